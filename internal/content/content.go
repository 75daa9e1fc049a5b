// Package content loads sites from YAML documents.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/3-lines-studio/showcase/internal/core"
)

//go:embed defaults/*.yaml
var defaults embed.FS

const DefaultSitePath = "defaults/landing.yaml"

type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

type siteDoc struct {
	Site   string            `yaml:"site"`
	Routes map[string]string `yaml:"routes"`
	Pages  []pageDoc         `yaml:"pages"`
}

type pageDoc struct {
	Name        string       `yaml:"name"`
	Pattern     string       `yaml:"pattern"`
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Image       string       `yaml:"image"`
	Sections    []sectionDoc `yaml:"sections"`
}

type actionDoc struct {
	Label string `yaml:"label"`
	To    string `yaml:"to"`
}

func (a *actionDoc) nav() core.NavAction {
	if a == nil {
		return core.NavAction{}
	}
	return core.NavAction{Label: a.Label, Destination: core.RouteKey(a.To)}
}

type imageDoc struct {
	URL string `yaml:"url"`
	Alt string `yaml:"alt"`
}

type heroDoc struct {
	Kind      string     `yaml:"kind"`
	Headline  string     `yaml:"headline"`
	Subtext   string     `yaml:"subtext"`
	Image     imageDoc   `yaml:"image"`
	Primary   *actionDoc `yaml:"primary"`
	Secondary *actionDoc `yaml:"secondary"`
}

type featureDoc struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type featureGridDoc struct {
	Kind     string       `yaml:"kind"`
	Title    string       `yaml:"title"`
	Subtitle string       `yaml:"subtitle"`
	Items    []featureDoc `yaml:"items"`
}

type cardDoc struct {
	Image   imageDoc `yaml:"image"`
	Title   string   `yaml:"title"`
	Caption string   `yaml:"caption"`
}

type cardGridDoc struct {
	Kind     string    `yaml:"kind"`
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Cards    []cardDoc `yaml:"cards"`
}

type callToActionDoc struct {
	Kind     string     `yaml:"kind"`
	Headline string     `yaml:"headline"`
	Subtext  string     `yaml:"subtext"`
	Action   *actionDoc `yaml:"action"`
}

// sectionDoc decodes a section in two passes: the kind first, then the body
// strictly against that kind's shape.
type sectionDoc struct {
	descriptor core.SectionDescriptor
}

func (s *sectionDoc) UnmarshalYAML(value *yaml.Node) error {
	var head struct {
		Kind string `yaml:"kind"`
	}
	if err := value.Decode(&head); err != nil {
		return err
	}
	kind := core.SectionKind(head.Kind)

	switch kind {
	case core.KindHero:
		var doc heroDoc
		if err := decodeStrict(value, &doc); err != nil {
			return err
		}
		if doc.Primary == nil {
			return fmt.Errorf("line %d: hero section needs a primary action", value.Line)
		}
		s.descriptor = core.Hero(core.HeroPayload{
			Headline:  doc.Headline,
			Subtext:   doc.Subtext,
			ImageURL:  doc.Image.URL,
			ImageAlt:  doc.Image.Alt,
			Primary:   doc.Primary.nav(),
			Secondary: doc.Secondary.nav(),
		})

	case core.KindFeatureGrid:
		var doc featureGridDoc
		if err := decodeStrict(value, &doc); err != nil {
			return err
		}
		items := make([]core.FeatureItem, 0, len(doc.Items))
		for _, it := range doc.Items {
			items = append(items, core.FeatureItem{Icon: it.Icon, Title: it.Title, Body: it.Body})
		}
		s.descriptor = core.FeatureGrid(core.FeatureGridPayload{Title: doc.Title, Subtitle: doc.Subtitle, Items: items})

	case core.KindCardGrid:
		var doc cardGridDoc
		if err := decodeStrict(value, &doc); err != nil {
			return err
		}
		cards := make([]core.Card, 0, len(doc.Cards))
		for _, c := range doc.Cards {
			cards = append(cards, core.Card{ImageURL: c.Image.URL, ImageAlt: c.Image.Alt, Title: c.Title, Caption: c.Caption})
		}
		s.descriptor = core.CardGrid(core.CardGridPayload{Title: doc.Title, Subtitle: doc.Subtitle, Cards: cards})

	case core.KindCallToAction:
		var doc callToActionDoc
		if err := decodeStrict(value, &doc); err != nil {
			return err
		}
		if doc.Action == nil {
			return fmt.Errorf("line %d: call_to_action section needs an action", value.Line)
		}
		s.descriptor = core.CallToAction(core.CallToActionPayload{
			Headline: doc.Headline,
			Subtext:  doc.Subtext,
			Action:   doc.Action.nav(),
		})

	default:
		// Kept so validation reports it with its position in the page.
		s.descriptor = core.SectionDescriptor{Kind: kind}
	}
	return nil
}

func decodeStrict(node *yaml.Node, out any) error {
	raw, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return nil
}

// Decode parses and validates a site document.
func Decode(r io.Reader) (core.Site, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc siteDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return core.Site{}, fmt.Errorf("decode site: empty document")
		}
		return core.Site{}, fmt.Errorf("decode site: %w", err)
	}

	site := core.Site{
		Name:   doc.Site,
		Routes: make(map[core.RouteKey]string, len(doc.Routes)),
		Pages:  make([]core.SitePage, 0, len(doc.Pages)),
	}
	for key, target := range doc.Routes {
		site.Routes[core.RouteKey(key)] = target
	}
	for _, p := range doc.Pages {
		sections := make([]core.SectionDescriptor, 0, len(p.Sections))
		for _, s := range p.Sections {
			sections = append(sections, s.descriptor)
		}
		site.Pages = append(site.Pages, core.SitePage{
			Name:    p.Name,
			Pattern: p.Pattern,
			Meta:    core.Meta{Title: p.Title, Description: p.Description, Image: p.Image},
			Page:    core.NewPage(sections...),
		})
	}

	if err := site.Validate(); err != nil {
		return core.Site{}, err
	}
	return site, nil
}

func LoadFile(fsys FileReader, path string) (core.Site, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return core.Site{}, fmt.Errorf("read site %s: %w", path, err)
	}
	site, err := Decode(bytes.NewReader(data))
	if err != nil {
		return core.Site{}, fmt.Errorf("%s: %w", path, err)
	}
	return site, nil
}

// Default returns the site bundled with the binary.
func Default() (core.Site, error) {
	return LoadFile(defaults, DefaultSitePath)
}

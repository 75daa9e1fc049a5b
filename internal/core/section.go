package core

import "fmt"

type SectionKind string

const (
	KindHero         SectionKind = "hero"
	KindFeatureGrid  SectionKind = "feature_grid"
	KindCardGrid     SectionKind = "card_grid"
	KindCallToAction SectionKind = "call_to_action"
)

// KnownKinds lists every kind RenderSection can dispatch, in declaration order.
var KnownKinds = []SectionKind{KindHero, KindFeatureGrid, KindCardGrid, KindCallToAction}

func (k SectionKind) Known() bool {
	for _, known := range KnownKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Payload is implemented only by the payload types in this package.
type Payload interface {
	Kind() SectionKind
	clone() Payload
}

type HeroPayload struct {
	Headline  string
	Subtext   string
	ImageURL  string
	ImageAlt  string
	Primary   NavAction
	Secondary NavAction
}

func (HeroPayload) Kind() SectionKind { return KindHero }

func (p HeroPayload) clone() Payload { return p }

type FeatureItem struct {
	Icon  string
	Title string
	Body  string
}

type FeatureGridPayload struct {
	Title    string
	Subtitle string
	Items    []FeatureItem
}

func (FeatureGridPayload) Kind() SectionKind { return KindFeatureGrid }

func (p FeatureGridPayload) clone() Payload {
	p.Items = append([]FeatureItem(nil), p.Items...)
	return p
}

type Card struct {
	ImageURL string
	ImageAlt string
	Title    string
	Caption  string
}

type CardGridPayload struct {
	Title    string
	Subtitle string
	Cards    []Card
}

func (CardGridPayload) Kind() SectionKind { return KindCardGrid }

func (p CardGridPayload) clone() Payload {
	p.Cards = append([]Card(nil), p.Cards...)
	return p
}

type CallToActionPayload struct {
	Headline string
	Subtext  string
	Action   NavAction
}

func (CallToActionPayload) Kind() SectionKind { return KindCallToAction }

func (p CallToActionPayload) clone() Payload { return p }

// SectionDescriptor describes one content block of a page. Kind selects the
// payload shape; use the constructors below to keep the two in agreement.
type SectionDescriptor struct {
	Kind    SectionKind
	Payload Payload
}

func Hero(p HeroPayload) SectionDescriptor {
	return SectionDescriptor{Kind: KindHero, Payload: p}
}

func FeatureGrid(p FeatureGridPayload) SectionDescriptor {
	return SectionDescriptor{Kind: KindFeatureGrid, Payload: p}
}

func CardGrid(p CardGridPayload) SectionDescriptor {
	return SectionDescriptor{Kind: KindCardGrid, Payload: p}
}

func CallToAction(p CallToActionPayload) SectionDescriptor {
	return SectionDescriptor{Kind: KindCallToAction, Payload: p}
}

func (d SectionDescriptor) Validate() error {
	if !d.Kind.Known() {
		return &UnsupportedSectionKindError{Kind: d.Kind}
	}
	if d.Payload == nil {
		return fmt.Errorf("%w: %s section has no payload", ErrPayloadMismatch, d.Kind)
	}
	if d.Payload.Kind() != d.Kind {
		return fmt.Errorf("%w: %s section carries %s payload", ErrPayloadMismatch, d.Kind, d.Payload.Kind())
	}

	switch p := d.Payload.(type) {
	case HeroPayload:
		if p.Primary.IsZero() {
			return fmt.Errorf("%w: hero has no primary action", ErrMissingAction)
		}
	case CallToActionPayload:
		if p.Action.IsZero() {
			return fmt.Errorf("%w: call_to_action has no action", ErrMissingAction)
		}
	}
	return nil
}

func (d SectionDescriptor) clone() SectionDescriptor {
	if d.Payload != nil {
		d.Payload = d.Payload.clone()
	}
	return d
}

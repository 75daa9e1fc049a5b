package core

// Page is an ordered, immutable sequence of sections. The zero value is an
// empty page.
type Page struct {
	sections []SectionDescriptor
}

func NewPage(sections ...SectionDescriptor) Page {
	owned := make([]SectionDescriptor, len(sections))
	for i, s := range sections {
		owned[i] = s.clone()
	}
	return Page{sections: owned}
}

func (p Page) Sections() []SectionDescriptor {
	out := make([]SectionDescriptor, len(p.sections))
	for i, s := range p.sections {
		out[i] = s.clone()
	}
	return out
}

func (p Page) Len() int {
	return len(p.sections)
}

func (p Page) Validate() error {
	for i, s := range p.sections {
		if err := s.Validate(); err != nil {
			return sectionError(i, err)
		}
	}
	return nil
}

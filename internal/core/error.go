package core

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedSectionKind = errors.New("unsupported section kind")
	ErrPayloadMismatch        = errors.New("section payload does not match kind")
	ErrUnknownElement         = errors.New("no navigable element with that id")
	ErrNoRouter               = errors.New("page renderer has no router")
	ErrPageNotFound           = errors.New("page not found")
	ErrInvalidRoutePath       = errors.New("invalid route path")
	ErrMissingAction          = errors.New("section is missing a required action")
	ErrInvalidPageName        = errors.New("invalid page name")
)

type UnsupportedSectionKindError struct {
	Kind SectionKind
}

func (e *UnsupportedSectionKindError) Error() string {
	return fmt.Sprintf("unsupported section kind %q", string(e.Kind))
}

func (e *UnsupportedSectionKindError) Is(target error) bool {
	return target == ErrUnsupportedSectionKind
}

package core

import "context"

// RouteKey names a destination. Only the Router knows what it resolves to.
type RouteKey string

type NavAction struct {
	Label       string
	Destination RouteKey
}

func (a NavAction) IsZero() bool {
	return a.Label == "" && a.Destination == ""
}

type NavigationRequest struct {
	Destination RouteKey
}

type Router interface {
	Navigate(ctx context.Context, req NavigationRequest) error
}

type RouterFunc func(ctx context.Context, req NavigationRequest) error

func (f RouterFunc) Navigate(ctx context.Context, req NavigationRequest) error {
	return f(ctx, req)
}

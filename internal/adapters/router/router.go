// Package router resolves RouteKeys against a site's route table.
package router

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/3-lines-studio/showcase/internal/core"
	"github.com/3-lines-studio/showcase/internal/logging"
)

type Table struct {
	routes map[core.RouteKey]string
}

func NewTable(routes map[core.RouteKey]string) *Table {
	owned := make(map[core.RouteKey]string, len(routes))
	for k, v := range routes {
		owned[k] = core.NormalizePath(v)
	}
	return &Table{routes: owned}
}

type UnresolvedRouteError struct {
	Key core.RouteKey
}

func (e *UnresolvedRouteError) Error() string {
	return fmt.Sprintf("no route for key %q", string(e.Key))
}

func (t *Table) Resolve(key core.RouteKey) (string, error) {
	path, ok := t.routes[key]
	if !ok {
		return "", &UnresolvedRouteError{Key: key}
	}
	return path, nil
}

// Link resolves an action straight to its target path, for pages that are
// served without the activation endpoint. Unresolved keys become "#".
func (t *Table) Link(_, _ string, action core.NavAction) string {
	path, err := t.Resolve(action.Destination)
	if err != nil {
		return "#"
	}
	return path
}

// Redirector answers one navigation request with an HTTP redirect. It is
// built per request around that request's ResponseWriter.
type Redirector struct {
	table *Table
	w     http.ResponseWriter
	r     *http.Request
}

func NewRedirector(table *Table, w http.ResponseWriter, r *http.Request) *Redirector {
	return &Redirector{table: table, w: w, r: r}
}

func (rd *Redirector) Navigate(ctx context.Context, req core.NavigationRequest) error {
	target, err := rd.table.Resolve(req.Destination)
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Debug("navigate",
		zap.String("destination", string(req.Destination)),
		zap.String("target", target),
	)
	http.Redirect(rd.w, rd.r, target, http.StatusSeeOther)
	return nil
}

var _ core.Router = (*Redirector)(nil)

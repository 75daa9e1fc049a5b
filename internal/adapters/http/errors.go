package http

import (
	"bytes"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/3-lines-studio/showcase/internal/adapters/html"
	"github.com/3-lines-studio/showcase/internal/adapters/router"
	"github.com/3-lines-studio/showcase/internal/core"
	"github.com/3-lines-studio/showcase/internal/logging"
)

func statusFor(err error) int {
	var unresolved *router.UnresolvedRouteError
	switch {
	case errors.Is(err, core.ErrPageNotFound),
		errors.Is(err, core.ErrUnknownElement),
		errors.As(err, &unresolved):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func serveError(w http.ResponseWriter, req *http.Request, err error, isDev bool) {
	status := statusFor(err)
	logger := logging.FromContext(req.Context())

	if status == http.StatusNotFound {
		logger.Debug("not found", zap.Error(err))
		http.NotFound(w, req)
		return
	}

	logger.Error("request failed", zap.Error(err))

	var buf bytes.Buffer
	if renderErr := html.ErrorPage(&buf, err.Error(), isDev); renderErr != nil {
		http.Error(w, http.StatusText(status), status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

package http

import (
	"net/http"
	"strings"

	"github.com/3-lines-studio/showcase/internal/core"
)

type AssetReader interface {
	ReadFile(path string) ([]byte, error)
	FileExists(path string) bool
}

type AssetHandler struct {
	assets AssetReader
	isDev  bool
}

// NewAssetHandler serves files from assets by request path. Mount it behind
// http.StripPrefix.
func NewAssetHandler(assets AssetReader, isDev bool) http.Handler {
	return &AssetHandler{
		assets: assets,
		isDev:  isDev,
	}
}

func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/")
	if path == "" || strings.Contains(path, "..") || !h.assets.FileExists(path) {
		http.NotFound(w, req)
		return
	}

	data, err := h.assets.ReadFile(path)
	if err != nil {
		http.NotFound(w, req)
		return
	}

	etag := core.ETag(data)
	header := w.Header()
	header.Set("Content-Type", core.ContentType(path))
	header.Set("ETag", etag)
	if h.isDev {
		header.Set("Cache-Control", "no-cache")
	} else {
		header.Set("Cache-Control", "public, max-age=3600")
	}

	if req.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	if req.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	_, _ = w.Write(data)
}

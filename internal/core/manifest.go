package core

import (
	"encoding/json"
)

// ManifestEntry records where a static export wrote one page.
type ManifestEntry struct {
	Pattern string `json:"pattern"`
	HTML    string `json:"html"`
	JSON    string `json:"json,omitempty"`
	ETag    string `json:"etag"`
}

type Manifest struct {
	Site    string                   `json:"site"`
	Entries map[string]ManifestEntry `json:"entries"`
	Assets  []string                 `json:"assets,omitempty"`
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) Encode() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

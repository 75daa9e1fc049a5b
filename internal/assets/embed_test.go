package assets

import (
	"io/fs"
	"testing"
)

func TestStaticContainsStylesheet(t *testing.T) {
	data, err := fs.ReadFile(Static(), "styles.css")
	if err != nil {
		t.Fatalf("ReadFile(styles.css) error = %v", err)
	}
	if len(data) == 0 {
		t.Error("Expected styles.css to have content")
	}
}

func TestStaticContainsLandingImages(t *testing.T) {
	for _, name := range []string{
		"images/hero.svg",
		"images/profile-soft.svg",
		"images/profile-street.svg",
		"images/profile-retro.svg",
	} {
		if _, err := fs.Stat(Static(), name); err != nil {
			t.Errorf("Stat(%s) error = %v", name, err)
		}
	}
}

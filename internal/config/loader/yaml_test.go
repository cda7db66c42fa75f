package loader

import (
	"errors"
	"testing"
)

func TestYAMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.yaml", `
editor:
  theme: monokai
  quitTimes: 4
search:
  centerOnMatch: false
`)

	config, err := NewYAMLLoaderWithFS(memfs, "/config.yaml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	editor, ok := config["editor"].(map[string]any)
	if !ok {
		t.Fatalf("editor = %T, want map[string]any", config["editor"])
	}
	if editor["theme"] != "monokai" {
		t.Errorf("theme = %v, want monokai", editor["theme"])
	}
	if editor["quitTimes"] != 4 {
		t.Errorf("quitTimes = %v (%T), want 4", editor["quitTimes"], editor["quitTimes"])
	}

	search, ok := config["search"].(map[string]any)
	if !ok {
		t.Fatal("expected search to be a map")
	}
	if search["centerOnMatch"] != false {
		t.Errorf("centerOnMatch = %v, want false", search["centerOnMatch"])
	}
}

func TestYAMLLoader_MissingFile(t *testing.T) {
	config, err := NewYAMLLoaderWithFS(NewMemFS(), "/nope.yml").Load()
	if err != nil || config != nil {
		t.Errorf("Load() = (%v, %v), want (nil, nil)", config, err)
	}
}

func TestYAMLLoader_ParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.yaml", "editor: [unclosed\n")

	_, err := NewYAMLLoaderWithFS(memfs, "/bad.yaml").Load()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if perr.Path != "/bad.yaml" {
		t.Errorf("Path = %q", perr.Path)
	}
}

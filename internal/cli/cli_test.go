package cli

import (
	"bytes"
	"io"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestProgressLogsElapsed(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, LogInfo))
	p.done("Generated fixtures for 19 families")

	if !strings.Contains(buf.String(), "Generated fixtures for 19 families") {
		t.Errorf("progress output = %q", buf.String())
	}
}

func TestCacheDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-test")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-test", appName) {
		t.Errorf("cacheDir = %q", dir)
	}
}

func TestReadTextsPrefersArgs(t *testing.T) {
	texts, err := readTexts([]string{"a", "b"}, "", strings.NewReader("ignored"))
	if err != nil {
		t.Fatalf("readTexts: %v", err)
	}
	if !reflect.DeepEqual(texts, []string{"a", "b"}) {
		t.Errorf("texts = %v", texts)
	}
}

func TestReadTextsFromReader(t *testing.T) {
	texts, err := readTexts(nil, "", strings.NewReader("one\n\ntwo\n"))
	if err != nil {
		t.Fatalf("readTexts: %v", err)
	}
	if !reflect.DeepEqual(texts, []string{"one", "two"}) {
		t.Errorf("texts = %v, blank lines should be dropped", texts)
	}
}

func TestReadTextsNoInput(t *testing.T) {
	if _, err := readTexts(nil, "", nil); err == nil {
		t.Error("expected error with no input source")
	}
	if _, err := readTexts(nil, "", strings.NewReader("")); err == nil {
		t.Error("expected error with empty input")
	}
}

func TestReadTextsMissingFile(t *testing.T) {
	if _, err := readTexts(nil, "/nonexistent/input.txt", nil); err == nil {
		t.Error("expected error for missing input file")
	}
}

func TestParseSetFlags(t *testing.T) {
	config, err := parseSetFlags([]string{"case=upper", "aug_p=0.5", "vary_chars=true"})
	if err != nil {
		t.Fatalf("parseSetFlags: %v", err)
	}

	if config["case"] != "upper" {
		t.Errorf("case = %v", config["case"])
	}
	if config["aug_p"] != 0.5 {
		t.Errorf("aug_p = %v", config["aug_p"])
	}
	if config["vary_chars"] != true {
		t.Errorf("vary_chars = %v", config["vary_chars"])
	}

	if _, err := parseSetFlags([]string{"novalue"}); err == nil {
		t.Error("expected error for flag without =")
	}
	if _, err := parseSetFlags([]string{"=bare"}); err == nil {
		t.Error("expected error for empty key")
	}
}

func TestParseFormats(t *testing.T) {
	if got := parseFormats(""); !reflect.DeepEqual(got, []string{FormatSVG}) {
		t.Errorf("default formats = %v", got)
	}
	if got := parseFormats("dot,png"); !reflect.DeepEqual(got, []string{"dot", "png"}) {
		t.Errorf("formats = %v", got)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"augment", "run", "intensity", "fixtures", "preview", "viz", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func noEnv(string) (string, bool) { return "", false }

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("expected valid defaults, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.TabWidth != Default().TabWidth {
		t.Errorf("expected default tab width, got %d", cfg.TabWidth)
	}
}

func TestDecodeTOML(t *testing.T) {
	data := `
theme = "dracula"
tab_width = 8

[log]
level = "debug"

[keys.normal]
"C-s" = "buffer.save"
`
	cfg := Default()
	if err := Decode(cfg, "config.toml", []byte(data)); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if cfg.Theme != "dracula" || cfg.TabWidth != 8 || cfg.Log.Level != "debug" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.LineLengthGuide != 80 {
		t.Errorf("expected unset setting to keep its default, got %d", cfg.LineLengthGuide)
	}
	if cfg.Keys["normal"]["C-s"] != "buffer.save" {
		t.Errorf("unexpected keys %v", cfg.Keys)
	}
}

func TestDecodeYAML(t *testing.T) {
	data := "scroll_amount: 3\nkeys:\n  insert:\n    C-c: application.switch_to_normal_mode\n"
	cfg := Default()
	if err := Decode(cfg, "config.yml", []byte(data)); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.ScrollAmount != 3 {
		t.Errorf("expected scroll amount 3, got %d", cfg.ScrollAmount)
	}
	if cfg.Keys["insert"]["C-c"] != "application.switch_to_normal_mode" {
		t.Errorf("unexpected keys %v", cfg.Keys)
	}

	if err := Decode(Default(), "empty.yaml", nil); err != nil {
		t.Errorf("expected empty document to decode, got %v", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	var perr *ParseError

	err := Decode(Default(), "bad.toml", []byte("tab_width = \n"))
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Line < 1 {
		t.Errorf("expected a line number, got %d", perr.Line)
	}

	err = Decode(Default(), "unknown.toml", []byte("colour = \"red\"\n"))
	if !errors.As(err, &perr) {
		t.Errorf("expected ParseError for unknown key, got %v", err)
	}

	err = Decode(Default(), "unknown.yaml", []byte("colour: red\n"))
	if !errors.As(err, &perr) {
		t.Errorf("expected ParseError for unknown yaml key, got %v", err)
	}

	if err := Decode(Default(), "config.json", []byte("{}")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := writeConfig(t, "config.toml", "tab_width = 0\n")
	_, err := Load(path)

	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Path != "tab_width" {
		t.Errorf("expected tab_width validation error, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"QUILL_THEME":         "github",
		"QUILL_TAB_WIDTH":     "2",
		"QUILL_LOG_LEVEL":     "WARN",
		"QUILL_LOG_FILE":      "/tmp/quill.log",
		"QUILL_SCROLL_AMOUNT": "5",
	}
	lookup := func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}

	cfg := Default()
	if err := ApplyEnv(cfg, lookup); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if cfg.Theme != "github" || cfg.TabWidth != 2 || cfg.Log.Level != "warn" || cfg.Log.File != "/tmp/quill.log" || cfg.ScrollAmount != 5 {
		t.Errorf("unexpected config %+v", cfg)
	}

	if err := ApplyEnv(Default(), noEnv); err != nil {
		t.Errorf("expected no error without env, got %v", err)
	}
}

func TestApplyEnvInvalidInt(t *testing.T) {
	lookup := func(name string) (string, bool) {
		if name == "QUILL_TAB_WIDTH" {
			return "wide", true
		}
		return "", false
	}
	err := ApplyEnv(Default(), lookup)
	if err == nil || !strings.Contains(err.Error(), "QUILL_TAB_WIDTH") {
		t.Errorf("expected error naming the variable, got %v", err)
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Theme = "no-such-theme"
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"theme", "log.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %v", want, err)
		}
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultPath(); got != filepath.Join("/xdg", "quill", "config.toml") {
		t.Errorf("unexpected default path %q", got)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&ParseError{Path: "a.toml", Line: 3, Column: 7, Message: "bad value"}, "a.toml:3:7: bad value"},
		{&ParseError{Path: "a.yaml", Line: 2, Message: "bad value"}, "a.yaml:2: bad value"},
		{&ParseError{Path: "a.yaml", Column: 4, Message: "bad value"}, "a.yaml: bad value"},
		{&ValidationError{Path: "tab_width", Message: "must be positive", Value: 0}, `invalid tab_width "0": must be positive`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

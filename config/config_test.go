package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"okayplayer-parser/parser"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "okthread.toml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg != parser.DefaultConfig() {
			t.Errorf("Load(\"\") = %+v, want defaults", cfg)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg != parser.DefaultConfig() {
			t.Errorf("missing file should yield defaults, got %+v", cfg)
		}
	})
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
time_offset_seconds = 60
reply_url_template = "https://mirror.example/f%d/t%d/m%d"
duplicates = "first-wins"
skip_malformed = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.TimeOffset != time.Minute {
		t.Errorf("TimeOffset = %v, want 1m", cfg.TimeOffset)
	}
	if cfg.ReplyURLTemplate != "https://mirror.example/f%d/t%d/m%d" {
		t.Errorf("ReplyURLTemplate = %q", cfg.ReplyURLTemplate)
	}
	if cfg.Duplicates != parser.FirstWins {
		t.Errorf("Duplicates = %v, want FirstWins", cfg.Duplicates)
	}
	if !cfg.SkipMalformed {
		t.Error("SkipMalformed = false, want true")
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `skip_malformed = true`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	def := parser.DefaultConfig()
	if cfg.TimeOffset != def.TimeOffset {
		t.Errorf("TimeOffset = %v, want default %v", cfg.TimeOffset, def.TimeOffset)
	}
	if cfg.ReplyURLTemplate != def.ReplyURLTemplate {
		t.Errorf("ReplyURLTemplate = %q, want default", cfg.ReplyURLTemplate)
	}
	if !cfg.SkipMalformed {
		t.Error("SkipMalformed = false, want true")
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("bad toml", func(t *testing.T) {
		path := writeConfig(t, `time_offset_seconds = [`)
		if _, err := Load(path); err == nil {
			t.Error("expected error for malformed TOML")
		}
	})

	t.Run("unknown duplicates policy", func(t *testing.T) {
		path := writeConfig(t, `duplicates = "middle-wins"`)
		if _, err := Load(path); err == nil {
			t.Error("expected error for unknown policy")
		}
	})
}

// Package config loads parser settings from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"okayplayer-parser/parser"
)

// fileConfig mirrors the on-disk TOML schema. Every key is optional; an
// omitted key keeps the parser default.
type fileConfig struct {
	TimeOffsetSeconds *int   `toml:"time_offset_seconds"`
	ReplyURLTemplate  string `toml:"reply_url_template"`
	Duplicates        string `toml:"duplicates"` // "last-wins" or "first-wins"
	SkipMalformed     *bool  `toml:"skip_malformed"`
}

// Load reads path into a parser.Config. An empty path or a file that does
// not exist yields the defaults.
func Load(path string) (parser.Config, error) {
	cfg := parser.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if fc.TimeOffsetSeconds != nil {
		cfg.TimeOffset = time.Duration(*fc.TimeOffsetSeconds) * time.Second
	}
	if fc.ReplyURLTemplate != "" {
		cfg.ReplyURLTemplate = fc.ReplyURLTemplate
	}
	switch fc.Duplicates {
	case "", "last-wins":
		cfg.Duplicates = parser.LastWins
	case "first-wins":
		cfg.Duplicates = parser.FirstWins
	default:
		return cfg, fmt.Errorf("unknown duplicates policy %q", fc.Duplicates)
	}
	if fc.SkipMalformed != nil {
		cfg.SkipMalformed = *fc.SkipMalformed
	}
	return cfg, nil
}

// Package config loads application configuration with layered sources:
// built-in defaults, an optional YAML file, then MUSICLIB_* environment
// variables (highest priority).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces environment overrides: MUSICLIB_SERVER_ADDR maps to
// server.addr, MUSICLIB_SOURCE to source.
const envPrefix = "MUSICLIB_"

// Config is immutable after Load and safe for concurrent reads.
type Config struct {
	// Source is the songs document: a local path or an http(s) URL.
	Source string       `koanf:"source"`
	Server ServerConfig `koanf:"server"`
	Log    LogConfig    `koanf:"log"`
	Enrich EnrichConfig `koanf:"enrich"`
}

// ServerConfig holds the HTTP shell settings.
type ServerConfig struct {
	Addr string `koanf:"addr"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// EnrichConfig holds enrichment pipeline settings.
type EnrichConfig struct {
	// Workers is the number of concurrent lyric fetches.
	Workers int `koanf:"workers"`
}

func defaults() Config {
	return Config{
		Source: "songs/songs.json",
		Server: ServerConfig{Addr: ":8080"},
		Log:    LogConfig{Level: "info", Format: "json"},
		Enrich: EnrichConfig{Workers: 8},
	}
}

// Load reads configuration. path names a YAML file; empty means "skip the
// file layer unless the file exists at the default location".
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path == "" {
		if _, err := os.Stat("musiclib.yaml"); err == nil {
			path = "musiclib.yaml"
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "_", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if cfg.Enrich.Workers < 1 {
		cfg.Enrich.Workers = 1
	}
	return cfg, nil
}

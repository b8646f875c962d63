package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/linekit/text"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix is the prefix of the environment variables read by loadSettings.
const envPrefix = "LINEDEMO"

// settings are the command defaults, overridable by flags.
type settings struct {
	FontSize    float64 `envconfig:"FONT_SIZE" default:"32"`
	Output      string  `envconfig:"OUTPUT" default:"linedemo.png"`
	Width       int     `envconfig:"WIDTH" default:"640"`
	Height      int     `envconfig:"HEIGHT" default:"160"`
	Supersample int     `envconfig:"SUPERSAMPLE" default:"2"`
	Foreground  string  `envconfig:"FOREGROUND" default:"#1e88e5"`
	Accent      string  `envconfig:"ACCENT" default:"#e53935"`
	Background  string  `envconfig:"BACKGROUND" default:"#fafafa"`
	Verbose     bool    `envconfig:"VERBOSE"`
}

func loadSettings() (settings, error) {
	var s settings
	if err := envconfig.Process(envPrefix, &s); err != nil {
		return settings{}, err
	}
	if s.FontSize <= 0 {
		return settings{}, fmt.Errorf("%s_FONT_SIZE must be positive, got %v", envPrefix, s.FontSize)
	}
	if s.Supersample < 1 {
		s.Supersample = 1
	}
	return s, nil
}

// loadConfig reads a layout configuration from a TOML file. An empty path
// yields the default configuration.
func loadConfig(path string) (text.Config, []string, error) {
	cfg := text.DefaultConfig()
	if path == "" {
		return cfg, nil, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return text.Config{}, nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var unknown []string
	for _, k := range md.Undecoded() {
		unknown = append(unknown, k.String())
	}
	return cfg, unknown, nil
}

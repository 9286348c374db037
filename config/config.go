package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/gdamore/tcell/v2"
)

// Environment variables read by Load.
const (
	EnvTheme = "VIEW_THEME"
	EnvLog   = "VIEW_LOG"
)

type Config struct {
	Theme   string
	LogPath string // empty discards logs
}

type ColorScheme struct {
	Name             string
	Background       tcell.Color
	Foreground       tcell.Color
	LineNumber       tcell.Color
	LineNumberActive tcell.Color
}

var Themes = map[string]*ColorScheme{
	"default": {
		Name:             "Terminal Default",
		Background:       tcell.ColorDefault,
		Foreground:       tcell.ColorDefault,
		LineNumber:       tcell.ColorDefault,
		LineNumberActive: tcell.ColorDefault,
	},
	"dark": {
		Name:             "Dark",
		Background:       tcell.ColorBlack,
		Foreground:       tcell.ColorWhite,
		LineNumber:       tcell.ColorGray,
		LineNumberActive: tcell.ColorWhite,
	},
	"light": {
		Name:             "Light",
		Background:       tcell.ColorWhite,
		Foreground:       tcell.ColorBlack,
		LineNumber:       tcell.ColorGray,
		LineNumberActive: tcell.ColorBlack,
	},
	"monokai": {
		Name:             "Monokai",
		Background:       tcell.NewRGBColor(39, 40, 34),
		Foreground:       tcell.NewRGBColor(248, 248, 242),
		LineNumber:       tcell.NewRGBColor(144, 144, 128),
		LineNumberActive: tcell.NewRGBColor(248, 248, 242),
	},
	"nord": {
		Name:             "Nord",
		Background:       tcell.NewRGBColor(46, 52, 64),
		Foreground:       tcell.NewRGBColor(236, 239, 244),
		LineNumber:       tcell.NewRGBColor(76, 86, 106),
		LineNumberActive: tcell.NewRGBColor(236, 239, 244),
	},
	"gruvbox": {
		Name:             "Gruvbox Dark",
		Background:       tcell.NewRGBColor(40, 40, 40),
		Foreground:       tcell.NewRGBColor(235, 219, 178),
		LineNumber:       tcell.NewRGBColor(146, 131, 116),
		LineNumberActive: tcell.NewRGBColor(251, 241, 199),
	},
}

func Default() *Config {
	return &Config{
		Theme: "default",
	}
}

// ThemeNames returns the known theme keys in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) GetTheme() *ColorScheme {
	theme, ok := Themes[c.Theme]
	if !ok {
		return Themes["default"]
	}
	return theme
}

// Load builds a Config from the environment. An unknown theme yields the
// default config together with an error describing the rejected value.
func Load() (*Config, error) {
	cfg := Default()
	cfg.LogPath = os.Getenv(EnvLog)

	if theme := os.Getenv(EnvTheme); theme != "" {
		if _, ok := Themes[theme]; !ok {
			return cfg, fmt.Errorf("unknown theme %q (want one of %v)", theme, ThemeNames())
		}
		cfg.Theme = theme
	}
	return cfg, nil
}

// OpenLog points the standard logger at c.LogPath. The returned closer must
// be called on exit; with no path configured, output is discarded.
func (c *Config) OpenLog() (io.Closer, error) {
	if c.LogPath == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(c.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}

// Package config loads the JSON colour/text document that drives the
// card render. The document is optional: a missing or malformed file
// is replaced wholesale by the built-in defaults, never merged
// field by field.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
)

// DefaultText is the overlay string used when no document supplies one.
const DefaultText = "Welcome to the Ryguy Color Scheme"

// Config is the parsed colour/text document. Colour slices hold raw
// channel values straight from the file; they are not range-checked
// here (out-of-range channels are clamped by the palette nudge).
type Config struct {
	BackgroundColor []int             `json:"backgroundColor"`
	FrameColor      []int             `json:"frameColor"`
	TextColor       []int             `json:"textColor"`
	Text            string            `json:"text"`
	Translations    map[string]string `json:"translations"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		BackgroundColor: []int{240, 240, 240},
		FrameColor:      []int{255, 63, 63},
		TextColor:       []int{94, 84, 255},
		Text:            DefaultText,
	}
}

// Load reads the document at path. The load is all or nothing: a
// missing file, a parse failure or a document without the expected
// shape discards the whole file in favour of Defaults.
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning: config %s not found, using defaults", path)
		} else {
			log.Printf("error: config %s unreadable (%v), using defaults", path, err)
		}
		return Defaults()
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("error: config %s is malformed (%v), using defaults", path, err)
		return Defaults()
	}
	if err := cfg.checkShape(); err != nil {
		log.Printf("error: config %s is malformed (%v), using defaults", path, err)
		return Defaults()
	}
	return cfg
}

// checkShape verifies the fields the renderer will access exist in
// the shape it expects.
func (c Config) checkShape() error {
	colours := []struct {
		name string
		rgb  []int
	}{
		{"backgroundColor", c.BackgroundColor},
		{"frameColor", c.FrameColor},
		{"textColor", c.TextColor},
	}
	for _, f := range colours {
		if len(f.rgb) != 3 {
			return fmt.Errorf("%s: want 3 channels, have %d", f.name, len(f.rgb))
		}
	}
	if c.Text == "" {
		return errors.New("text: missing")
	}
	return nil
}

// ResolveText picks the overlay string for lang: the exact
// translations entry when present, otherwise the base text. Lookup is
// case-sensitive with no locale negotiation; a missing translation is
// not an error.
func (c Config) ResolveText(lang string) string {
	if s, ok := c.Translations[lang]; ok {
		return s
	}
	return c.Text
}

// Package theme holds the static styling configuration of the student UI:
// which source paths are scanned for style usage and the two custom colour
// tokens. It is plain data; nothing here applies styles.
package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aanand-mishra/students-board/internal/utils/validate"
)

// Theme mirrors the styling configuration file.
type Theme struct {
	// Content lists glob patterns of source files scanned for style usage.
	Content []string `yaml:"content" validate:"required,min=1,dive,required"`
	Colors  Colors   `yaml:"colors"`
}

// Colors are the custom colour tokens.
type Colors struct {
	Main      string `yaml:"main" validate:"required,iscolor"`
	Secondary string `yaml:"secondary" validate:"required,iscolor"`
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Content: []string{"./src/**/*.{html,js,svelte,ts}"},
		Colors: Colors{
			Main:      "#1b998b",
			Secondary: "rgb(118, 194, 185)",
		},
	}
}

// Load reads the theme at path. An empty path returns Default.
func Load(path string) (Theme, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme.Load: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a theme document. Keys missing from the document keep
// their default value; unknown keys are an error.
func Parse(raw []byte) (Theme, error) {
	t := Default()

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	// an empty document decodes to io.EOF and keeps the defaults
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Theme{}, fmt.Errorf("theme.Parse: %w", err)
	}

	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Validate checks that every content pattern is non-empty and both
// colours are valid CSS colours (hex, rgb, rgba, hsl or hsla).
func (t Theme) Validate() error {
	return validate.Struct("theme", t)
}

// Package layout turns packed, colored sessions into absolute pixel
// geometry for rendering.
package layout

import (
	"fmt"
	"os"

	"github.com/tiendc/go-deepcopy"
	"gopkg.in/yaml.v3"

	"github.com/roomgrid/roomgrid-go/pkg/roomgrid/schedule"
)

// Config holds the render geometry and palette. All lengths are pixels.
type Config struct {
	// ColumnWidth is the full width of one date column, before lane
	// division.
	ColumnWidth float64 `yaml:"column_width"`
	// HourHeight is the vertical extent of one hour.
	HourHeight float64 `yaml:"hour_height"`
	// GutterWidth is the time-axis strip on the left edge.
	GutterWidth float64 `yaml:"gutter_width"`
	// HeaderHeight is the date-label strip on the top edge.
	HeaderHeight float64 `yaml:"header_height"`
	// BlockPadding is the gap inset around each session block.
	BlockPadding float64 `yaml:"block_padding"`
	// Palette overrides the instructor color palette.
	Palette []string `yaml:"palette"`
}

var defaultConfig = Config{
	ColumnWidth:  120,
	HourHeight:   60,
	GutterWidth:  56,
	HeaderHeight: 32,
	BlockPadding: 2,
	Palette:      schedule.Palette,
}

// DefaultConfig returns a copy of the built-in configuration. The copy is
// deep so callers can reorder or extend the palette without touching the
// package default.
func DefaultConfig() Config {
	var cfg Config
	if err := deepcopy.Copy(&cfg, &defaultConfig); err != nil {
		// Both sides are plain values; a copy failure is a programming
		// error, not a runtime condition.
		panic(err)
	}
	return cfg
}

// LoadConfig reads a YAML config file over the defaults. Fields absent from
// the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing render config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects geometry a renderer cannot work with.
func (c Config) Validate() error {
	if c.ColumnWidth <= 0 {
		return fmt.Errorf("column_width must be positive, got %v", c.ColumnWidth)
	}
	if c.HourHeight <= 0 {
		return fmt.Errorf("hour_height must be positive, got %v", c.HourHeight)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("palette must list at least one color")
	}
	return nil
}

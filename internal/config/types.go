// Package config loads the gallery settings file (loom.yaml).
package config

import (
	"strings"
	"time"

	"github.com/alexisbeaulieu97/loom/internal/frame"
	"github.com/alexisbeaulieu97/loom/internal/placement"
	"github.com/alexisbeaulieu97/loom/internal/timeslot"
)

// DefaultPath is the settings file looked up when --config is not given.
const DefaultPath = "loom.yaml"

// Config represents the full gallery configuration document.
type Config struct {
	Theme        string             `yaml:"theme" validate:"theme"`
	LogLevel     string             `yaml:"log_level" validate:"loglevel"`
	Pagination   PaginationConfig   `yaml:"pagination"`
	TimePicker   TimePickerConfig   `yaml:"time_picker"`
	Tooltip      TooltipConfig      `yaml:"tooltip"`
	Carousel     CarouselConfig     `yaml:"carousel"`
	Verification VerificationConfig `yaml:"verification"`
}

// PaginationConfig seeds the pagination demo.
type PaginationConfig struct {
	TotalPages   int `yaml:"total_pages" validate:"min=1,max=10000"`
	SiblingCount int `yaml:"sibling_count" validate:"min=0,max=10"`
}

// TimePickerConfig sets the slot granularity in minutes.
type TimePickerConfig struct {
	Interval int `yaml:"interval" validate:"min=1,max=1440"`
}

// TooltipConfig sets the preferred side of floating panels.
type TooltipConfig struct {
	Side string `yaml:"side" validate:"side"`
}

// CarouselConfig controls autoplay.
type CarouselConfig struct {
	AutoPlay bool          `yaml:"autoplay"`
	Interval time.Duration `yaml:"interval" validate:"min=100ms,max=10m"`
}

// VerificationConfig sets the code length.
type VerificationConfig struct {
	Length int `yaml:"length" validate:"min=1,max=12"`
}

// Default returns the settings used for every key the file leaves out.
func Default() Config {
	return Config{
		Theme:        "light",
		LogLevel:     "info",
		Pagination:   PaginationConfig{TotalPages: 10, SiblingCount: 1},
		TimePicker:   TimePickerConfig{Interval: timeslot.DefaultInterval},
		Tooltip:      TooltipConfig{Side: "bottom"},
		Carousel:     CarouselConfig{AutoPlay: true, Interval: 5 * time.Second},
		Verification: VerificationConfig{Length: 4},
	}
}

// PlacementSide converts the tooltip side. Validated configs always
// convert; anything else falls back to the bottom.
func (c Config) PlacementSide() placement.Side {
	side, err := placement.ParseSide(c.Tooltip.Side)
	if err != nil {
		return placement.SideBottom
	}
	return side
}

// Dark reports whether the dark theme is selected.
func (c Config) Dark() bool {
	return strings.EqualFold(c.Theme, "dark")
}

// CarouselTick is the autoplay period, never shorter than one frame.
func (c Config) CarouselTick() time.Duration {
	return max(c.Carousel.Interval, frame.DefaultInterval)
}

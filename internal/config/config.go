package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/yotam4h/photopacker/internal/layout"
)

//go:embed page_sizes.yaml
var pageSizesYAML []byte

// Defaults match standard photo-print settings.
const (
	DefaultPageSize = "a4"
	DefaultDPI      = 300
	DefaultMarginMM = 2
	DefaultWorkers  = 4
)

type Config struct {
	Pages   PagesConfig
	Workers int    // default worker count for rendering, overridable per run
	Backing string // backing color as #rrggbb, defaults to white
}

type PagesConfig struct {
	Pages map[string]PageDimensions `yaml:"pages"`
}

type PageDimensions struct {
	WidthCm  float64 `yaml:"width_cm"`
	HeightCm float64 `yaml:"height_cm"`
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

func Load() *Config {
	var pages PagesConfig
	if err := yaml.Unmarshal(pageSizesYAML, &pages); err != nil {
		// Embedded file, cannot fail outside of a build error.
		panic("failed to unmarshal embedded page_sizes.yaml: " + err.Error())
	}

	backing := os.Getenv("PHOTOPACKER_BACKING_COLOR")
	if backing == "" {
		backing = "#ffffff"
	}

	return &Config{
		Pages:   pages,
		Workers: envInt("PHOTOPACKER_WORKERS", DefaultWorkers),
		Backing: backing,
	}
}

// BackingColor parses the configured backing color. The format is #rrggbb;
// anything else is a configuration error.
func (c *Config) BackingColor() (color.RGBA, error) {
	s := c.Backing
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid backing color %q, expected #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid backing color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}

// PageSize resolves a preset name to a PageSpec. Unknown names are a
// configuration error and must abort the run before any processing.
func (c *Config) PageSize(name string) (layout.PageSpec, error) {
	dims, ok := c.Pages.Pages[name]
	if !ok {
		return layout.PageSpec{}, fmt.Errorf("unsupported page size: %s (supported: %v)", name, c.PageSizeNames())
	}
	return layout.PageSpec{Name: name, WidthCm: dims.WidthCm, HeightCm: dims.HeightCm}, nil
}

// PageSizeNames returns the supported preset names in sorted order.
func (c *Config) PageSizeNames() []string {
	names := make([]string, 0, len(c.Pages.Pages))
	for name := range c.Pages.Pages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

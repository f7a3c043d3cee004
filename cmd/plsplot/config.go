package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/plsviz/adapter"
	"github.com/katalvlaran/plsviz/layout"
	"github.com/katalvlaran/plsviz/render/interactive"
	"github.com/katalvlaran/plsviz/render/static"
	"github.com/katalvlaran/plsviz/style"
)

// Config is the optional YAML file behind --config. Command-line flags win
// over file values.
type Config struct {
	Format string `yaml:"format"` // png, jpg, tiff, svg, pdf, eps or html

	Static struct {
		Width  float64 `yaml:"width"`  // inches per panel
		Height float64 `yaml:"height"` // inches per panel
		Side   float64 `yaml:"side"`   // inches, loading biplot
	} `yaml:"static"`

	Interactive struct {
		Width  string `yaml:"width"` // CSS size
		Height string `yaml:"height"`
		Theme  string `yaml:"theme"`
		Title  string `yaml:"title"`
	} `yaml:"interactive"`

	Palette []string `yaml:"palette"`

	Biplot struct {
		XFamily    adapter.Family `yaml:"x_family"`
		YFamily    adapter.Family `yaml:"y_family"`
		Components []int          `yaml:"components"`
		Factor     float64        `yaml:"factor"`
		Limits     []float64      `yaml:"limits"` // [low, high], both axes
	} `yaml:"biplot"`
}

// defaultConfig matches the library defaults.
func defaultConfig() *Config {
	c := &Config{Format: "png"}
	c.Biplot.XFamily = adapter.DefaultXFamily
	c.Biplot.YFamily = adapter.DefaultYFamily
	c.Biplot.Components = []int{0, 1}
	c.Biplot.Factor = layout.DefaultFactor
	return c
}

// loadConfig overlays the file at path onto the defaults; "" means defaults only.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if err := style.Palette(c.Palette).Validate(); err != nil {
		return err
	}
	if n := len(c.Biplot.Components); n != 2 {
		return fmt.Errorf("biplot.components: want 2 indices, got %d", n)
	}
	if n := len(c.Biplot.Limits); n != 0 && n != 2 {
		return fmt.Errorf("biplot.limits: want [low, high], got %d values", n)
	}
	return nil
}

// staticTheme converts the file values into a static.Theme; zero values
// fall back to the renderer defaults.
func (c *Config) staticTheme() static.Theme {
	t := static.DefaultTheme()
	if len(c.Palette) > 0 {
		t.Palette = c.Palette
	}
	if c.Static.Width > 0 {
		t.PanelWidth = vg.Length(c.Static.Width) * vg.Inch
	}
	if c.Static.Height > 0 {
		t.PanelHeight = vg.Length(c.Static.Height) * vg.Inch
	}
	if c.Static.Side > 0 {
		t.LoadingsSide = vg.Length(c.Static.Side) * vg.Inch
	}
	return t
}

func (c *Config) interactiveTheme() interactive.Theme {
	return interactive.Theme{
		Palette:    c.Palette,
		Width:      c.Interactive.Width,
		Height:     c.Interactive.Height,
		ChartTheme: c.Interactive.Theme,
		PageTitle:  c.Interactive.Title,
	}
}

// biplotOptions translates the biplot section.
func (c *Config) biplotOptions() []layout.BiplotOption {
	opts := []layout.BiplotOption{
		layout.WithFamilies(c.Biplot.XFamily, c.Biplot.YFamily),
		layout.WithComponents(c.Biplot.Components[0], c.Biplot.Components[1]),
		layout.WithFactor(c.Biplot.Factor),
	}
	if len(c.Biplot.Limits) == 2 {
		opts = append(opts, layout.WithLimits(layout.Range{Low: c.Biplot.Limits[0], High: c.Biplot.Limits[1]}))
	}
	return opts
}

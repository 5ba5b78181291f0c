package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "github.com/goccy/go-yaml"

	"github.com/glintproject/glint/lib/utils"
)

type Config struct {
	Window      WindowCfg    `yaml:"window"`
	ClearColour string       `yaml:"clear_colour"`
	PulseColour string       `yaml:"pulse_colour"`
	Pipeline    *PipelineCfg `yaml:"pipeline"`
	Animation   AnimationCfg `yaml:"animation"`
	Api         *ApiCfg      `yaml:"api"`
}

type WindowCfg struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
	// VSync is the swap interval; nil means 1 (wait for vblank once)
	VSync *int `yaml:"vsync"`
}

// PipelineCfg points the viewer at on-disk GLSL sources. Both paths are
// optional; a missing one falls back to the embedded shader of that stage.
type PipelineCfg struct {
	Vertex   CfgPath `yaml:"vertex"`
	Fragment CfgPath `yaml:"fragment"`
	Watch    bool    `yaml:"watch"`
}

type AnimationCfg struct {
	Speed   float32 `yaml:"speed"`
	Enabled *bool   `yaml:"enabled"`
}

type ApiCfg struct {
	Bind           string `yaml:"bind"`
	EnableProfiler bool   `yaml:"enable_profiler"`
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %s", filename, err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			_ = fmt.Errorf("could not close %s: %s", filename, err)
		}
	}(f)

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}
	UnmarshalBase = filepath.Dir(absFilename)

	m := yaml.NewDecoder(f)
	cfg := &Config{}
	err = m.Decode(cfg)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, err
}

func (c *Config) applyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = 1280
	}
	if c.Window.Height == 0 {
		c.Window.Height = 720
	}
	if c.Window.Title == "" {
		c.Window.Title = "glint"
	}
	if c.ClearColour == "" {
		c.ClearColour = "#804040ff"
	}
	if c.PulseColour == "" {
		c.PulseColour = "#ff8033ff"
	}
	if c.Animation.Speed == 0 {
		c.Animation.Speed = 1
	}
}

func (c *Config) Validate() error {
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("window size %dx%d is invalid", c.Window.Width, c.Window.Height)
	}
	if c.Window.VSync != nil && *c.Window.VSync < 0 {
		return fmt.Errorf("window vsync interval must not be negative")
	}
	if !utils.ColourValidate(c.ClearColour) {
		return fmt.Errorf("%s is not a valid RGBA hex clear_colour", c.ClearColour)
	}
	if !utils.ColourValidate(c.PulseColour) {
		return fmt.Errorf("%s is not a valid RGBA hex pulse_colour", c.PulseColour)
	}
	if c.Animation.Speed < 0 {
		return fmt.Errorf("animation speed must not be negative")
	}
	if c.Pipeline != nil {
		if c.Pipeline.Watch && c.Pipeline.Vertex == "" && c.Pipeline.Fragment == "" {
			return fmt.Errorf("pipeline watch is enabled but no shader files are configured")
		}
	}
	if c.Api != nil && c.Api.Bind == "" {
		return fmt.Errorf("api section is present but has no bind address")
	}
	return nil
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Window: %dx%d (%s)\n", c.Window.Width, c.Window.Height, c.Window.Title))

	b.WriteString("Pipeline:\n")
	if c.Pipeline == nil {
		b.WriteString("  embedded shaders\n")
	} else {
		b.WriteString(fmt.Sprintf("  vertex: %s\n", orEmbedded(c.Pipeline.Vertex)))
		b.WriteString(fmt.Sprintf("  fragment: %s\n", orEmbedded(c.Pipeline.Fragment)))
		b.WriteString(fmt.Sprintf("  watch: %v\n", c.Pipeline.Watch))
	}

	if c.Api != nil {
		b.WriteString(fmt.Sprintf("Api: %s\n", c.Api.Bind))
	}

	return b.String()
}

func orEmbedded(p CfgPath) string {
	if p == "" {
		return "(embedded)"
	}
	return string(p)
}

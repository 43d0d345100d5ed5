package app

import (
	"os"
	"time"

	"github.com/juju/gnuflag"
	"github.com/juju/loggo"
	"gopkg.in/errgo.v1"
	"gopkg.in/yaml.v2"

	"gridlife/internal/core"
	"gridlife/internal/loop"
)

// Config represents the startup parameters for the application.
type Config struct {
	Border      float64       `yaml:"border"`
	Rows        int           `yaml:"rows"`
	Columns     int           `yaml:"columns"`
	TimeStep    time.Duration `yaml:"time-step"`
	Interval    time.Duration `yaml:"interval"`
	ResizeDelay time.Duration `yaml:"resize-delay"`
	Seed        int64         `yaml:"seed"`
	Density     float64       `yaml:"density"`
	Width       int           `yaml:"width"`
	Height      int           `yaml:"height"`
	ShaderDir   string        `yaml:"shader-dir"`
	LogLevel    string        `yaml:"log-level"`

	// File names a YAML file supplying values not given as flags.
	File string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Border:      4,
		Rows:        20,
		Columns:     40,
		TimeStep:    loop.DefaultTimeStep,
		Interval:    100 * time.Millisecond,
		ResizeDelay: 500 * time.Millisecond,
		Seed:        42,
		Density:     0.3,
		Width:       960,
		Height:      480,
		LogLevel:    "<root>=INFO",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *gnuflag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "YAML configuration file")
	fs.Float64Var(&c.Border, "border", c.Border, "gutter around and between cells in pixels")
	fs.IntVar(&c.Rows, "rows", c.Rows, "initial grid rows")
	fs.IntVar(&c.Columns, "columns", c.Columns, "initial grid columns")
	fs.DurationVar(&c.TimeStep, "step", c.TimeStep, "fixed simulation time step")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations")
	fs.DurationVar(&c.ResizeDelay, "resize-delay", c.ResizeDelay, "debounce delay for grid size changes")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for random fills")
	fs.IntVar(&c.Width, "width", c.Width, "window width")
	fs.IntVar(&c.Height, "height", c.Height, "window height")
	fs.StringVar(&c.ShaderDir, "shaders", c.ShaderDir, "load shaders from this directory instead of the built-in ones")
	fs.StringVar(&c.LogLevel, "log", c.LogLevel, "loggo logging specification")
}

// Parse binds c to fs and parses args. When a configuration file is named,
// its values replace the defaults but flags given explicitly still win.
func (c *Config) Parse(fs *gnuflag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(true, args); err != nil {
		return errgo.Mask(err, errgo.Is(gnuflag.ErrHelp))
	}
	if c.File != "" {
		explicit := make(map[string]string)
		fs.Visit(func(f *gnuflag.Flag) {
			explicit[f.Name] = f.Value.String()
		})
		if err := c.ReadFile(c.File); err != nil {
			return errgo.Mask(err)
		}
		for name, value := range explicit {
			if err := fs.Set(name, value); err != nil {
				return errgo.Notef(err, "reapply --%s", name)
			}
		}
	}
	c.Validate()
	return nil
}

// ReadFile loads YAML values from path into c. Keys not present keep their
// current values.
func (c *Config) ReadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errgo.Notef(err, "cannot read configuration")
	}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return errgo.Notef(err, "cannot parse %s", path)
	}
	return nil
}

// Validate clamps degenerate values into their usable ranges.
func (c *Config) Validate() {
	if c.Border < 0 {
		c.Border = 0
	}
	size := core.GridSize{Rows: c.Rows, Columns: c.Columns}.Clamp(core.MinGrid, core.MaxGrid)
	c.Rows, c.Columns = size.Rows, size.Columns
	if c.TimeStep <= 0 {
		c.TimeStep = loop.DefaultTimeStep
	}
	c.Interval = core.ClampInterval(c.Interval)
	if c.ResizeDelay < 0 {
		c.ResizeDelay = 0
	}
	if c.Density < 0 {
		c.Density = 0
	}
	if c.Density > 1 {
		c.Density = 1
	}
	if c.Width < 1 {
		c.Width = 1
	}
	if c.Height < 1 {
		c.Height = 1
	}
}

// ConfigureLogging applies LogLevel to the loggo loggers.
func (c *Config) ConfigureLogging() error {
	if err := loggo.ConfigureLoggers(c.LogLevel); err != nil {
		return errgo.Notef(err, "invalid log specification %q", c.LogLevel)
	}
	return nil
}

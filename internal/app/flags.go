package app

import (
	"flag"
	"io"
	"log"
	"time"

	"viscous-bg/internal/viscous"
)

// Config represents the command-line parameters shared by the host programs.
type Config struct {
	Seed      int64
	Scale     float64
	FPS       int
	TimeScale float64
	Noise     string

	Width   int
	Height  int
	Refresh int
	Verbose bool

	Output string
	At     time.Duration
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := viscous.DefaultConfig()
	return &Config{
		Seed:      d.Seed,
		Scale:     d.Scale,
		FPS:       d.FPS,
		TimeScale: d.TimeScale,
		Noise:     d.Noise,
		Width:     1280,
		Height:    720,
		Refresh:   60,
		Output:    "viscous.png",
		At:        10 * time.Second,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the noise lattice shuffle")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "buffer units per viewport pixel")
	fs.IntVar(&c.FPS, "fps", c.FPS, "accepted frames per second")
	fs.Float64Var(&c.TimeScale, "time-scale", c.TimeScale, "noise time per millisecond")
	fs.StringVar(&c.Noise, "noise", c.Noise, "noise field: simplex, opensimplex or perlin")
	fs.IntVar(&c.Width, "width", c.Width, "window or output width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window or output height in pixels")
	fs.IntVar(&c.Refresh, "refresh", c.Refresh, "host ticks per second")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log renderer lifecycle events")
	fs.StringVar(&c.Output, "o", c.Output, "snapshot output path")
	fs.DurationVar(&c.At, "at", c.At, "snapshot wall-clock time")
}

// Renderer converts the flags into a renderer configuration.
func (c *Config) Renderer() viscous.Config {
	r := viscous.DefaultConfig()
	r.Seed = c.Seed
	r.Scale = c.Scale
	r.FPS = c.FPS
	r.TimeScale = c.TimeScale
	r.Noise = c.Noise
	return r
}

// Logger returns a logger writing to w when verbose, or nil otherwise.
func (c *Config) Logger(w io.Writer) *log.Logger {
	if !c.Verbose {
		return nil
	}
	return log.New(w, "", log.LstdFlags|log.Lmicroseconds)
}

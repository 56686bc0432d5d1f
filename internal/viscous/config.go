package viscous

import (
	"strconv"

	"viscous-bg/internal/core"
	"viscous-bg/internal/noise"
	"viscous-bg/internal/render"
)

// Config controls buffer sizing, frame rate and animation speed.
type Config struct {
	// Scale converts host pixels to buffer units.
	Scale float64
	MinW  int
	MinH  int

	FPS int
	// TimeScale converts milliseconds of wall-clock time into noise time.
	TimeScale float64

	Seed  int64
	Noise string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Scale:     render.DefaultScale,
		MinW:      render.MinWidth,
		MinH:      render.MinHeight,
		FPS:       core.DefaultFPS,
		TimeScale: 0.00012,
		Seed:      core.DefaultSeed,
		Noise:     noise.KindSimplex,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Invalid entries keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["min_w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MinW = parsed
		}
	}
	if v, ok := cfg["min_h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MinH = parsed
		}
	}
	if v, ok := cfg["fps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.FPS = parsed
		}
	}
	if v, ok := cfg["time_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.TimeScale = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["noise"]; ok {
		switch v {
		case noise.KindSimplex, noise.KindOpenSimplex, noise.KindPerlin:
			c.Noise = v
		}
	}
	return c
}

// Parameters lists the configuration for overlays and logs.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Name: "viscous",
		Params: []core.Parameter{
			{Key: "scale", Value: strconv.FormatFloat(c.Scale, 'g', -1, 64), Description: "buffer units per host pixel"},
			{Key: "min", Value: strconv.Itoa(c.MinW) + "x" + strconv.Itoa(c.MinH), Description: "smallest buffer size"},
			{Key: "fps", Value: strconv.Itoa(c.FPS), Description: "accepted frames per second"},
			{Key: "time_scale", Value: strconv.FormatFloat(c.TimeScale, 'g', -1, 64), Description: "noise time per millisecond"},
			{Key: "seed", Value: strconv.FormatInt(c.Seed, 10), Description: "lattice shuffle seed"},
			{Key: "noise", Value: c.Noise, Description: "noise field backend"},
		},
	}
}

package noise

import (
	"errors"
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"

	"viscous-bg/internal/core"
)

// ErrUnknownField is returned by NewField for unsupported backend names.
var ErrUnknownField = errors.New("noise: unknown field")

// Field backend names accepted by NewField.
const (
	KindSimplex     = "simplex"
	KindOpenSimplex = "opensimplex"
	KindPerlin      = "perlin"
)

// Field is a continuous scalar noise field sampled in three dimensions.
type Field interface {
	Noise3D(x, y, z float64) float64
}

var _ Field = (*Table)(nil)

// OpenSimplex adapts github.com/ojrac/opensimplex-go to Field.
type OpenSimplex struct {
	n opensimplex.Noise
}

// NewOpenSimplex returns an OpenSimplex field seeded with seed.
func NewOpenSimplex(seed int64) *OpenSimplex {
	return &OpenSimplex{n: opensimplex.New(seed)}
}

// Noise3D samples the field at (x, y, z).
func (o *OpenSimplex) Noise3D(x, y, z float64) float64 { return o.n.Eval3(x, y, z) }

// Perlin adapts github.com/aquilax/go-perlin to Field.
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin returns a single-octave-weighted Perlin field seeded with seed.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(2, 2, 3, seed)}
}

// Noise3D samples the field at (x, y, z).
func (p *Perlin) Noise3D(x, y, z float64) float64 { return p.p.Noise3D(x, y, z) }

// NewField builds the named backend. The simplex backend is shuffled with
// rng when non-nil, otherwise with a PCG seeded from seed.
func NewField(kind string, seed int64, rng core.RNG) (Field, error) {
	switch kind {
	case "", KindSimplex:
		if rng == nil {
			rng = core.NewRNG(seed)
		}
		return NewTable(rng), nil
	case KindOpenSimplex:
		return NewOpenSimplex(seed), nil
	case KindPerlin:
		return NewPerlin(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, kind)
	}
}

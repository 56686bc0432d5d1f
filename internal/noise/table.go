// Package noise implements the seeded 3-D simplex lattice that drives the
// viscous background, plus adapters for third-party noise fields.
package noise

import (
	"errors"
	"fmt"

	"viscous-bg/internal/core"
)

// ErrNotPermutation reports a base table that is not a bijection on 0..255.
var ErrNotPermutation = errors.New("noise: table is not a permutation of 0..255")

// Gradients are the twelve edge directions of a cube used as simplex corner
// gradients.
var Gradients = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// ReferencePermutation is Ken Perlin's reference permutation. It gives a
// fixed, documented lattice independent of any random source.
var ReferencePermutation = [256]uint8{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// Table is a doubled permutation with matching gradient selectors. It is
// never mutated after construction, so one Table may be shared by any number
// of readers.
type Table struct {
	perm [512]uint8
	grad [512]uint8
}

// NewTable shuffles 0..255 with a Fisher-Yates pass driven by rng. A nil rng
// falls back to core.DefaultSeed.
func NewTable(rng core.RNG) *Table {
	rng = core.OrDefault(rng)

	var base [256]uint8
	for i := range base {
		base[i] = uint8(i)
	}
	for i := 255; i > 0; i-- {
		j := rng.IntN(i + 1)
		if j < 0 || j > i {
			// fold values from misbehaving sources back into range
			j = ((j % (i + 1)) + i + 1) % (i + 1)
		}
		base[i], base[j] = base[j], base[i]
	}
	return mirror(base)
}

// NewTableFromPermutation builds a Table from an explicit base permutation.
func NewTableFromPermutation(base [256]uint8) (*Table, error) {
	var seen [256]bool
	for i, v := range base {
		if seen[v] {
			return nil, fmt.Errorf("%w: value %d repeated at index %d", ErrNotPermutation, v, i)
		}
		seen[v] = true
	}
	return mirror(base), nil
}

// NewSeededTable shuffles with a math/rand/v2 PCG seeded with seed.
func NewSeededTable(seed int64) *Table {
	return NewTable(core.NewRNG(seed))
}

func mirror(base [256]uint8) *Table {
	t := &Table{}
	for i := 0; i < 512; i++ {
		t.perm[i] = base[i&255]
		t.grad[i] = t.perm[i] % 12
	}
	return t
}

// Base returns a copy of the underlying 256-entry permutation.
func (t *Table) Base() [256]uint8 {
	var out [256]uint8
	copy(out[:], t.perm[:256])
	return out
}

// Perm returns the mirrored permutation entry at i (0 <= i < 512).
func (t *Table) Perm(i int) uint8 { return t.perm[i] }

// Gradient returns the gradient selector at i (0 <= i < 512).
func (t *Table) Gradient(i int) uint8 { return t.grad[i] }

package noise

import "math"

const (
	f3 = 1.0 / 3.0
	g3 = 1.0 / 6.0
)

func dot(g uint8, x, y, z float64) float64 {
	v := &Gradients[g]
	return v[0]*x + v[1]*y + v[2]*z
}

// Noise3D evaluates 3-D simplex noise at (x, y, z). Results stay within
// roughly [-1, 1].
func (t *Table) Noise3D(x, y, z float64) float64 {
	// Skew into simplex space to find the containing cell.
	s := (x + y + z) * f3
	i := math.Floor(x + s)
	j := math.Floor(y + s)
	k := math.Floor(z + s)

	u := (i + j + k) * g3
	x0 := x - (i - u)
	y0 := y - (j - u)
	z0 := z - (k - u)

	// Pick the simplex from the ordering of the cell-relative offsets.
	var i1, j1, k1, i2, j2, k2 int
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
		case x0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
		}
	} else {
		switch {
		case y0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
		case x0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
		}
	}

	x1 := x0 - float64(i1) + g3
	y1 := y0 - float64(j1) + g3
	z1 := z0 - float64(k1) + g3
	x2 := x0 - float64(i2) + 2*g3
	y2 := y0 - float64(j2) + 2*g3
	z2 := z0 - float64(k2) + 2*g3
	x3 := x0 - 1 + 3*g3
	y3 := y0 - 1 + 3*g3
	z3 := z0 - 1 + 3*g3

	ii := int(i) & 255
	jj := int(j) & 255
	kk := int(k) & 255
	p := &t.perm

	var n float64
	if t0 := 0.6 - x0*x0 - y0*y0 - z0*z0; t0 > 0 {
		t0 *= t0
		n += t0 * t0 * dot(t.grad[ii+int(p[jj+int(p[kk])])], x0, y0, z0)
	}
	if t1 := 0.6 - x1*x1 - y1*y1 - z1*z1; t1 > 0 {
		t1 *= t1
		n += t1 * t1 * dot(t.grad[ii+i1+int(p[jj+j1+int(p[kk+k1])])], x1, y1, z1)
	}
	if t2 := 0.6 - x2*x2 - y2*y2 - z2*z2; t2 > 0 {
		t2 *= t2
		n += t2 * t2 * dot(t.grad[ii+i2+int(p[jj+j2+int(p[kk+k2])])], x2, y2, z2)
	}
	if t3 := 0.6 - x3*x3 - y3*y3 - z3*z3; t3 > 0 {
		t3 *= t3
		n += t3 * t3 * dot(t.grad[ii+1+int(p[jj+1+int(p[kk+1])])], x3, y3, z3)
	}
	return 32 * n
}

package noise

import (
	"errors"
	"math"
	"testing"
)

func TestNewFieldBackends(t *testing.T) {
	for _, kind := range []string{"", KindSimplex, KindOpenSimplex, KindPerlin} {
		f, err := NewField(kind, 21, nil)
		if err != nil {
			t.Fatalf("%q: %v", kind, err)
		}
		g, _ := NewField(kind, 21, nil)
		for i := 0; i < 50; i++ {
			x := float64(i) * 0.37
			a, b := f.Noise3D(x, 1.1, 0.2), g.Noise3D(x, 1.1, 0.2)
			if a != b {
				t.Fatalf("%q: same seed differs at %v: %v vs %v", kind, x, a, b)
			}
			if math.IsNaN(a) || math.Abs(a) > 2 {
				t.Fatalf("%q: sample %v out of range", kind, a)
			}
		}
	}
}

func TestNewFieldUsesInjectedSource(t *testing.T) {
	f, err := NewField(KindSimplex, 0, &lcg{state: 42})
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Noise3D(0.31, 0.47, 0.02); math.Abs(got-0.36034159424167705) > 1e-12 {
		t.Fatalf("injected source ignored: %v", got)
	}
}

func TestNewFieldUnknown(t *testing.T) {
	if _, err := NewField("worley", 1, nil); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

package noise

import (
	"errors"
	"testing"

	"viscous-bg/internal/core"
)

// lcg is a fixed-seed source with a sequence that is easy to reproduce
// outside Go.
type lcg struct{ state uint64 }

func (l *lcg) IntN(n int) int {
	l.state = l.state*6364136223846793005 + 1442695040888963407
	return int((l.state >> 33) % uint64(n))
}

func assertBijective(t *testing.T, base [256]uint8) {
	t.Helper()
	var seen [256]bool
	for i, v := range base {
		if seen[v] {
			t.Fatalf("value %d repeated at index %d", v, i)
		}
		seen[v] = true
	}
}

func TestNewTableIsMirroredPermutation(t *testing.T) {
	tab := NewTable(core.NewRNG(7))
	base := tab.Base()
	assertBijective(t, base)
	for i := 0; i < 512; i++ {
		if tab.Perm(i) != base[i&255] {
			t.Fatalf("perm[%d] = %d, want %d", i, tab.Perm(i), base[i&255])
		}
		if tab.Gradient(i) != base[i&255]%12 {
			t.Fatalf("grad[%d] = %d, want %d", i, tab.Gradient(i), base[i&255]%12)
		}
	}
}

func TestNewTableSeedDeterministic(t *testing.T) {
	a := NewSeededTable(99).Base()
	b := NewSeededTable(99).Base()
	if a != b {
		t.Fatal("same seed produced different tables")
	}
	if c := NewSeededTable(100).Base(); a == c {
		t.Fatal("different seeds should shuffle differently")
	}
}

func TestNewTableInjectedSource(t *testing.T) {
	base := NewTable(&lcg{state: 42}).Base()
	want := []uint8{253, 168, 148, 251, 19, 249, 66, 143}
	for i, v := range want {
		if base[i] != v {
			t.Fatalf("base[%d] = %d, want %d", i, base[i], v)
		}
	}
}

func TestNewTableNilSourceFallsBack(t *testing.T) {
	got := NewTable(nil).Base()
	assertBijective(t, got)
	if got != NewSeededTable(core.DefaultSeed).Base() {
		t.Fatal("nil source should use the default seed")
	}
}

type wildSource struct{ n int }

func (w *wildSource) IntN(n int) int {
	w.n++
	if w.n%2 == 0 {
		return -w.n * 7
	}
	return n + w.n
}

func TestNewTableFoldsOutOfRangeSource(t *testing.T) {
	assertBijective(t, NewTable(&wildSource{}).Base())
}

func TestNewTableFromPermutation(t *testing.T) {
	tab, err := NewTableFromPermutation(ReferencePermutation)
	if err != nil {
		t.Fatalf("reference permutation rejected: %v", err)
	}
	if tab.Base() != ReferencePermutation {
		t.Fatal("base table not preserved")
	}

	bad := ReferencePermutation
	bad[10] = bad[11]
	if _, err := NewTableFromPermutation(bad); !errors.Is(err, ErrNotPermutation) {
		t.Fatalf("expected ErrNotPermutation, got %v", err)
	}
}

func TestGradientsAreCubeEdges(t *testing.T) {
	for i, g := range Gradients {
		zeros := 0
		for _, c := range g {
			if c != -1 && c != 0 && c != 1 {
				t.Fatalf("gradient %d has component %v", i, c)
			}
			if c == 0 {
				zeros++
			}
		}
		if zeros != 1 {
			t.Fatalf("gradient %d = %v, want exactly one zero component", i, g)
		}
	}
}

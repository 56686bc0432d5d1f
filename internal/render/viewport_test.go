package render

import (
	"testing"

	"viscous-bg/internal/core"
)

func TestBufferSize(t *testing.T) {
	tests := []struct {
		name   string
		vw, vh int
		scale  float64
		want   core.Size
	}{
		{"full hd", 1920, 1080, DefaultScale, core.Size{W: 115, H: 65}},
		{"floor dominates", 100, 100, DefaultScale, core.Size{W: 40, H: 24}},
		{"zero viewport", 0, 0, DefaultScale, core.Size{W: 40, H: 24}},
		{"negative viewport", -500, -20, DefaultScale, core.Size{W: 40, H: 24}},
		{"4k", 3840, 2160, DefaultScale, core.Size{W: 230, H: 130}},
		{"invalid scale falls back", 1920, 1080, 0, core.Size{W: 115, H: 65}},
		{"half rounds away from zero", 1025, 1000, 0.1, core.Size{W: 103, H: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BufferSize(tt.vw, tt.vh, tt.scale); got != tt.want {
				t.Fatalf("BufferSize(%d, %d, %v) = %+v, want %+v", tt.vw, tt.vh, tt.scale, got, tt.want)
			}
		})
	}
}

func TestViewportUpdateReportsChanges(t *testing.T) {
	v := NewViewport(DefaultScale)
	if size, changed := v.Update(1920, 1080); !changed || size != (core.Size{W: 115, H: 65}) {
		t.Fatalf("first update = %+v changed=%v", size, changed)
	}
	// 1921*0.06 still rounds to 115.
	if _, changed := v.Update(1921, 1080); changed {
		t.Fatal("sub-unit resize should not change the buffer")
	}
	if size, changed := v.Update(1280, 720); !changed || size != (core.Size{W: 77, H: 43}) {
		t.Fatalf("shrink = %+v changed=%v", size, changed)
	}
	if v.Size() != (core.Size{W: 77, H: 43}) {
		t.Fatalf("size = %+v", v.Size())
	}
}

func TestViewportCustomFloor(t *testing.T) {
	v := NewViewportMin(DefaultScale, 8, 4)
	if size, _ := v.Update(80, 40); size != (core.Size{W: 8, H: 4}) {
		t.Fatalf("size = %+v, want 8x4", size)
	}
}

package ui

import (
	"fmt"
	"strings"

	"viscous-bg/internal/core"
	"viscous-bg/internal/viscous"
)

// Text formats renderer counters and tunables for the debug overlay.
func Text(st viscous.Stats, params core.ParameterSnapshot, tps float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "buffer %dx%d  frames %d  skipped %d\n", st.Size.W, st.Size.H, st.Frames, st.Skipped)
	fmt.Fprintf(&b, "T %.4f  host %.1f tps\n", st.T, tps)
	for _, p := range params.Params {
		fmt.Fprintf(&b, "%s = %s\n", p.Key, p.Value)
	}
	return b.String()
}

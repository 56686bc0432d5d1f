package viscous

import "testing"

func TestFromMapParsesAndIgnoresInvalid(t *testing.T) {
	c := FromMap(map[string]string{
		"scale":      "0.1",
		"fps":        "24",
		"seed":       "-9",
		"noise":      "perlin",
		"time_scale": "bogus",
		"min_w":      "0",
		"min_h":      "16",
	})
	def := DefaultConfig()
	if c.Scale != 0.1 || c.FPS != 24 || c.Seed != -9 || c.Noise != "perlin" || c.MinH != 16 {
		t.Fatalf("parsed config %+v", c)
	}
	if c.TimeScale != def.TimeScale || c.MinW != def.MinW {
		t.Fatalf("invalid values should keep defaults: %+v", c)
	}
	if got := FromMap(map[string]string{"noise": "worley"}).Noise; got != def.Noise {
		t.Fatalf("unknown noise kept as %q", got)
	}
	if FromMap(nil) != def {
		t.Fatal("nil map should return defaults")
	}
}

func TestParameters(t *testing.T) {
	snap := DefaultConfig().Parameters()
	if v, ok := snap.Lookup("fps"); !ok || v != "12" {
		t.Fatalf("fps = %q %v", v, ok)
	}
	if v, ok := snap.Lookup("min"); !ok || v != "40x24" {
		t.Fatalf("min = %q %v", v, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("unexpected parameter")
	}
}

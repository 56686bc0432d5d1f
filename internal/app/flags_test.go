package app

import (
	"bytes"
	"flag"
	"testing"
	"time"

	"viscous-bg/internal/viscous"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-seed", "7", "-scale", "0.1", "-fps", "20", "-noise", "opensimplex", "-at", "1.5s", "-v"})
	if err != nil {
		t.Fatal(err)
	}
	r := cfg.Renderer()
	if r.Seed != 7 || r.Scale != 0.1 || r.FPS != 20 || r.Noise != "opensimplex" {
		t.Fatalf("renderer config %+v", r)
	}
	if r.MinW != viscous.DefaultConfig().MinW {
		t.Fatal("floor values should keep defaults")
	}
	if cfg.At != 1500*time.Millisecond {
		t.Fatalf("at = %v", cfg.At)
	}

	var out bytes.Buffer
	logger := cfg.Logger(&out)
	if logger == nil {
		t.Fatal("verbose config should return a logger")
	}
	logger.Print("hello")
	if out.Len() == 0 {
		t.Fatal("logger wrote nothing")
	}
}

func TestDefaultsMatchRenderer(t *testing.T) {
	if got := NewConfig().Renderer(); got != viscous.DefaultConfig() {
		t.Fatalf("default flags %+v differ from renderer defaults", got)
	}
	if NewConfig().Logger(nil) != nil {
		t.Fatal("quiet config should not log")
	}
}

package display

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/optscope/internal/optval"
)

func newTestApplier(t *testing.T) *Applier {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	return NewApplier(screen)
}

func TestHandles(t *testing.T) {
	a := newTestApplier(t)

	tests := []struct {
		name string
		want bool
	}{
		{"background", true},
		{"termguicolors", true},
		{"laststatus", true},
		{"term", true},
		{"t_Co", true},
		{"tabstop", false},
		{"wrap", false},
	}

	for _, tt := range tests {
		if got := a.Handles(tt.name); got != tt.want {
			t.Errorf("Handles(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestApplyBackground(t *testing.T) {
	a := newTestApplier(t)

	if err := a.Apply("background", optval.Str("light")); err != nil {
		t.Fatalf("Apply(background=light): %v", err)
	}
	if a.Background() != "light" {
		t.Errorf("Background() = %q, want light", a.Background())
	}

	if err := a.Apply("background", optval.Str("blue")); err == nil {
		t.Error("invalid background value should fail to apply")
	}
	if a.Background() != "light" {
		t.Error("failed apply must not change applied state")
	}

	if err := a.Apply("background", optval.Int(1)); err == nil {
		t.Error("non-string background should fail to apply")
	}
}

func TestApplyTermguicolors(t *testing.T) {
	a := newTestApplier(t)

	// The simulation screen reports enough colors.
	if err := a.Apply("termguicolors", optval.Bool(true)); err != nil {
		t.Fatalf("Apply(termguicolors): %v", err)
	}
	if !a.TrueColor() {
		t.Error("TrueColor() should be true after apply")
	}

	if err := a.Apply("termguicolors", optval.Str("yes")); err == nil {
		t.Error("non-boolean termguicolors should fail to apply")
	}
}

func TestApplyTerm(t *testing.T) {
	a := newTestApplier(t)

	if err := a.Apply("term", optval.Str("xterm-256color")); err != nil {
		t.Fatalf("Apply(term): %v", err)
	}
	if err := a.Apply("term", optval.Str("")); err == nil {
		t.Error("empty term should fail to apply")
	}
}

func TestApplyTerminalCode(t *testing.T) {
	a := newTestApplier(t)
	if err := a.Apply("t_Co", optval.Str("256")); err != nil {
		t.Errorf("terminal codes apply without re-derivation: %v", err)
	}
}

// Package display applies display-affecting option values to the
// terminal backend.
//
// Storing a display option and applying it are separate steps: the
// engine stores first, then asks the applier to re-derive the
// dependent terminal state. An apply failure is reported to the
// caller but does not undo the store.
package display

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/optscope/internal/optval"
)

// Applier re-derives terminal state from option values.
type Applier struct {
	mu     sync.Mutex
	screen tcell.Screen

	background string
	trueColor  bool
}

// NewApplier creates an applier for a screen. The screen must already
// be initialized.
func NewApplier(screen tcell.Screen) *Applier {
	return &Applier{screen: screen, background: "dark"}
}

// Handles reports whether an option participates in display
// application. Terminal codes ("t_" names) always do.
func (a *Applier) Handles(name string) bool {
	switch name {
	case "background", "termguicolors", "laststatus", "term":
		return true
	}
	return len(name) > 2 && name[:2] == "t_"
}

// Apply re-derives display state for one option. The stored value has
// already been accepted; a non-nil return means the terminal rejected
// the derived state.
func (a *Applier) Apply(name string, value optval.OptVal) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch name {
	case "background":
		bg, ok := value.AsStr()
		if !ok {
			return fmt.Errorf("background requires a string value")
		}
		if bg != "dark" && bg != "light" {
			return fmt.Errorf("background must be 'dark' or 'light', got %q", bg)
		}
		a.background = bg
		a.screen.SetStyle(a.defaultStyle())
		a.screen.Sync()
		return nil

	case "termguicolors":
		tgc, ok := value.AsBool()
		if !ok {
			return fmt.Errorf("termguicolors requires a boolean value")
		}
		if tgc && a.screen.Colors() < 256 {
			return fmt.Errorf("terminal reports %d colors, cannot enable termguicolors", a.screen.Colors())
		}
		a.trueColor = tgc
		a.screen.SetStyle(a.defaultStyle())
		a.screen.Sync()
		return nil

	case "laststatus":
		// Layout-only option, a redraw picks it up.
		a.screen.Sync()
		return nil

	case "term":
		term, ok := value.AsStr()
		if !ok {
			return fmt.Errorf("term requires a string value")
		}
		if term == "" {
			return fmt.Errorf("term cannot be empty")
		}
		a.screen.Sync()
		return nil
	}

	// Terminal codes are stored verbatim, nothing to re-derive.
	return nil
}

// Background returns the currently applied background brightness.
func (a *Applier) Background() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.background
}

// TrueColor returns whether 24-bit color output is applied.
func (a *Applier) TrueColor() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.trueColor
}

// defaultStyle derives the base style from the applied options.
func (a *Applier) defaultStyle() tcell.Style {
	style := tcell.StyleDefault
	if a.background == "light" {
		return style.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	}
	return style.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
}

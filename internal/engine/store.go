package engine

import (
	"github.com/dshills/optscope/internal/option"
	"github.com/dshills/optscope/internal/optval"
)

// store holds the global option cells and set-tracking.
//
// Every visible option has a global cell seeded from its default; for
// window-local and buffer-local options this cell is the copy used to
// seed new targets. Local cells live on the windows and buffers
// themselves.
type store struct {
	globals map[option.ID]optval.OptVal
	wasSet  map[option.ID]bool
}

func newStore() *store {
	return &store{
		globals: make(map[option.ID]optval.OptVal),
		wasSet:  make(map[option.ID]bool),
	}
}

// global reads the global cell, falling back to the option default.
func (s *store) global(id option.ID, opt *option.Option) optval.OptVal {
	if v, ok := s.globals[id]; ok {
		return v
	}
	return opt.Default
}

// setGlobal writes the global cell.
func (s *store) setGlobal(id option.ID, v optval.OptVal) {
	s.globals[id] = v
}

// markSet records that the option has been explicitly set.
func (s *store) markSet(id option.ID) {
	s.wasSet[id] = true
}

// WasSet reports whether the option was ever explicitly set.
func (s *store) WasSet(id option.ID) bool {
	return s.wasSet[id]
}

package editor

import (
	"github.com/dshills/optscope/internal/option"
	"github.com/dshills/optscope/internal/optval"
)

// LocalCells stores the local option values of one window or buffer.
// A missing entry means the option has no local value; reads report
// that with the nil sentinel.
type LocalCells struct {
	values map[option.ID]optval.OptVal
}

// NewLocalCells creates an empty cell store.
func NewLocalCells() *LocalCells {
	return &LocalCells{values: make(map[option.ID]optval.OptVal)}
}

// Get returns the local value for an option, or the nil sentinel when
// no local value is set.
func (c *LocalCells) Get(id option.ID) optval.OptVal {
	return c.values[id]
}

// Set stores a local value. Setting the nil sentinel clears the cell.
func (c *LocalCells) Set(id option.ID, v optval.OptVal) {
	if v.IsNil() {
		delete(c.values, id)
		return
	}
	c.values[id] = v
}

// Clear removes the local value for an option.
func (c *LocalCells) Clear(id option.ID) {
	delete(c.values, id)
}

// Len returns the number of set cells.
func (c *LocalCells) Len() int {
	return len(c.values)
}

package engine

import (
	"github.com/dshills/optscope/internal/editor"
	"github.com/dshills/optscope/internal/option"
	"github.com/dshills/optscope/internal/optval"
)

// hasScopeValue reports whether the option holds any value at the
// requested target kind. Terminal-capability options only ever hold a
// global value.
func (e *Engine) hasScopeValue(res resolved) bool {
	if e.reg.IsTTYOnly(res.name) {
		return res.req == ReqGlobal
	}
	switch res.req {
	case ReqGlobal:
		return true
	case ReqWindow:
		return res.opt.Scope.HasWindow()
	case ReqBuffer:
		return res.opt.Scope.HasBuffer()
	}
	return false
}

// localCells returns the cell bank holding the option's local value,
// read from the current context. Global-only options have none.
func (e *Engine) localCells(opt *option.Option) *editor.LocalCells {
	switch {
	case opt.Scope.HasWindow():
		return e.state.CurrentWindow().Cells
	case opt.Scope.HasBuffer():
		return e.state.CurrentBuffer().Cells
	default:
		return nil
	}
}

// readValue resolves the scope-correct value against the current
// (possibly switched) context. Returns the nil sentinel when the
// option has no value at the addressed scope.
func (e *Engine) readValue(res resolved) optval.OptVal {
	if !e.hasScopeValue(res) {
		return optval.Nil()
	}

	cells := e.localCells(res.opt)

	switch res.scope {
	case ScopeGlobal:
		return e.store.global(res.id, res.opt)

	case ScopeLocal:
		if cells == nil {
			// Global-only options: the local value is the global one.
			return e.store.global(res.id, res.opt)
		}
		local := cells.Get(res.id)
		if local.IsNil() && !res.opt.Scope.GlobalLocal() {
			// Purely local options inherit the seed copy until set.
			return e.store.global(res.id, res.opt)
		}
		return local

	default: // ScopeUnset: local overrides global only when present.
		if cells != nil {
			if local := cells.Get(res.id); !local.IsNil() {
				return local
			}
		}
		return e.store.global(res.id, res.opt)
	}
}

// writeValue stores a type-checked value into the scope-correct cells
// against the current (possibly switched) context.
//
// With no explicit scope, global-local and purely local options update
// both the local cell and the global copy; an explicit scope narrows
// the write to one side.
func (e *Engine) writeValue(res resolved, value optval.OptVal) {
	cells := e.localCells(res.opt)

	writeGlobal := res.scope != ScopeLocal
	writeLocal := res.scope != ScopeGlobal && cells != nil

	if cells == nil {
		// Global-only options have a single cell; any scope addresses it.
		writeGlobal = true
	}

	if writeGlobal {
		e.store.setGlobal(res.id, value)
	}
	if writeLocal {
		cells.Set(res.id, value)
	}
	e.store.markSet(res.id)
}

// checkValueKind rejects values whose kind does not match the option.
// The nil sentinel is never a valid value to store.
func checkValueKind(res resolved, value optval.OptVal) error {
	if value.Kind() != res.opt.Kind {
		return &TypeError{Option: res.name, Want: res.opt.Kind, Got: value.Kind()}
	}
	return nil
}

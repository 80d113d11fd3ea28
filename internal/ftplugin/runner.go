// Package ftplugin runs filetype initialization hooks.
//
// Hooks are Lua chunks registered per filetype. Triggering a filetype
// runs its chunk against a buffer API so the hook can assign
// buffer-local option defaults, mirroring what filetype plugins do in
// a full editor.
package ftplugin

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// Buffer is the surface a hook sees of the buffer it initializes.
type Buffer interface {
	// SetOption sets a buffer-local option on the target buffer.
	SetOption(name string, value any) error
	// GetOption reads an option as seen from the target buffer.
	GetOption(name string) (any, error)
}

// Runner holds registered filetype hooks.
//
// Each trigger runs in a fresh Lua state that is closed before the
// trigger returns; hooks cannot leak state between invocations.
type Runner struct {
	mu      sync.RWMutex
	scripts map[string]string
}

// NewRunner creates an empty hook runner.
func NewRunner() *Runner {
	return &Runner{scripts: make(map[string]string)}
}

// Register installs the hook chunk for a filetype, replacing any
// previous one.
func (r *Runner) Register(filetype, script string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scripts[filetype] = script
}

// Has reports whether a hook is registered for the filetype.
func (r *Runner) Has(filetype string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.scripts[filetype]
	return ok
}

// Trigger runs the hook for a filetype against the given buffer.
// Filetypes without a registered hook are a no-op.
func (r *Runner) Trigger(filetype string, buf Buffer) error {
	r.mu.RLock()
	script, ok := r.scripts[filetype]
	r.mu.RUnlock()
	if !ok {
		return nil
	}

	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("buf", bufferTable(L, buf))

	if err := L.DoString(script); err != nil {
		return fmt.Errorf("filetype hook for %q failed: %w", filetype, err)
	}
	return nil
}

// bufferTable builds the Lua-side view of the buffer.
func bufferTable(L *lua.LState, buf Buffer) *lua.LTable {
	tbl := L.NewTable()

	L.SetField(tbl, "set_option", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		value := fromLua(L.CheckAny(2))
		if err := buf.SetOption(name, value); err != nil {
			L.RaiseError("set_option(%s): %v", name, err)
		}
		return 0
	}))

	L.SetField(tbl, "get_option", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		value, err := buf.GetOption(name)
		if err != nil {
			L.RaiseError("get_option(%s): %v", name, err)
		}
		L.Push(toLua(L, value))
		return 1
	}))

	return tbl
}

// fromLua converts a Lua value to its Go option representation.
func fromLua(v lua.LValue) any {
	switch val := v.(type) {
	case lua.LBool:
		return bool(val)
	case lua.LNumber:
		return int64(val)
	case lua.LString:
		return string(val)
	default:
		return nil
	}
}

// toLua converts a Go option value to a Lua value.
func toLua(L *lua.LState, v any) lua.LValue {
	switch val := v.(type) {
	case bool:
		return lua.LBool(val)
	case int64:
		return lua.LNumber(val)
	case string:
		return lua.LString(val)
	default:
		return lua.LNil
	}
}

package option

// ScopeKind is the closed set of scope capability variants an option
// can declare. Global-local variants carry a global default plus an
// optional per-window or per-buffer override.
type ScopeKind uint8

const (
	// GlobalOnly options have a single process-wide value.
	GlobalOnly ScopeKind = iota
	// WindowLocal options have one value per window and no global value.
	WindowLocal
	// BufferLocal options have one value per buffer plus a global copy
	// used to seed new buffers.
	BufferLocal
	// GlobalWindow options have a global default with an optional
	// per-window override.
	GlobalWindow
	// GlobalBuffer options have a global default with an optional
	// per-buffer override.
	GlobalBuffer
)

// String returns a human-readable name for the scope kind.
func (k ScopeKind) String() string {
	switch k {
	case GlobalOnly:
		return "global"
	case WindowLocal:
		return "window-local"
	case BufferLocal:
		return "buffer-local"
	case GlobalWindow:
		return "global window-local"
	case GlobalBuffer:
		return "global buffer-local"
	default:
		return "unknown"
	}
}

// HasGlobal reports whether the option carries a global value.
// Window-local options are the one flavor without one.
func (k ScopeKind) HasGlobal() bool {
	return k != WindowLocal
}

// HasWindow reports whether the option can hold a per-window value.
func (k ScopeKind) HasWindow() bool {
	return k == WindowLocal || k == GlobalWindow
}

// HasBuffer reports whether the option can hold a per-buffer value.
func (k ScopeKind) HasBuffer() bool {
	return k == BufferLocal || k == GlobalBuffer
}

// GlobalLocal reports whether the option is global-local: a global
// default overridable per window or buffer.
func (k ScopeKind) GlobalLocal() bool {
	return k == GlobalWindow || k == GlobalBuffer
}

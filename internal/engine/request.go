package engine

import (
	"github.com/dshills/optscope/internal/editor"
	"github.com/dshills/optscope/internal/option"
)

// Scope is the explicit value scope of a request.
type Scope uint8

const (
	// ScopeUnset means no explicit scope was requested; global-local
	// options then prefer the local value when one is set.
	ScopeUnset Scope = iota
	// ScopeLocal addresses the local value.
	ScopeLocal
	// ScopeGlobal addresses the global value.
	ScopeGlobal
)

// String returns the scope keyword.
func (s Scope) String() string {
	switch s {
	case ScopeLocal:
		return "local"
	case ScopeGlobal:
		return "global"
	default:
		return "unset"
	}
}

// ReqScope is the requested target kind of a request.
type ReqScope uint8

const (
	// ReqGlobal resolves against the current context.
	ReqGlobal ReqScope = iota
	// ReqWindow resolves against a target window.
	ReqWindow
	// ReqBuffer resolves against a target buffer.
	ReqBuffer
)

// String returns the target keyword used in request messages.
func (r ReqScope) String() string {
	switch r {
	case ReqWindow:
		return "win"
	case ReqBuffer:
		return "buf"
	default:
		return "global"
	}
}

// Request is the raw shape of an option request before validation.
type Request struct {
	scope    string
	hasScope bool

	win    editor.WindowID
	hasWin bool

	buf    editor.BufferID
	hasBuf bool

	filetype    string
	hasFiletype bool
}

// RequestOption configures a Request.
type RequestOption func(*Request)

// WithScope requests an explicit scope, "local" or "global".
func WithScope(scope string) RequestOption {
	return func(r *Request) {
		r.scope = scope
		r.hasScope = true
	}
}

// ForWindow targets a window's local value.
func ForWindow(id editor.WindowID) RequestOption {
	return func(r *Request) {
		r.win = id
		r.hasWin = true
	}
}

// ForBuffer targets a buffer's local value. Implies local scope when
// setting.
func ForBuffer(id editor.BufferID) RequestOption {
	return func(r *Request) {
		r.buf = id
		r.hasBuf = true
	}
}

// WithFiletype resolves the default value for a filetype by probing an
// ephemeral document. Only valid when getting, and exclusive with
// scope and target options.
func WithFiletype(filetype string) RequestOption {
	return func(r *Request) {
		r.filetype = filetype
		r.hasFiletype = true
	}
}

func buildRequest(opts []RequestOption) Request {
	var r Request
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// resolved is a validated, normalized request.
type resolved struct {
	name string
	id   option.ID
	opt  *option.Option

	scope    Scope
	req      ReqScope
	win      *editor.Window
	buf      *editor.Buffer
	filetype string
}

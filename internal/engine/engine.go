// Package engine resolves, reads, and mutates scoped option values.
//
// Options may hold values globally, per window, per buffer, or both
// globally and locally at once (global-local). The engine validates a
// caller's scope request against the option's declared capabilities,
// temporarily repoints the editor's current context at the requested
// target, resolves the correct storage cell, and guarantees the prior
// context is restored on every exit path, including errors.
//
// The engine shares the editor's single logical current context and
// does no locking of its own; callers that invoke it from multiple
// goroutines must serialize access.
package engine

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/dshills/optscope/internal/editor"
	"github.com/dshills/optscope/internal/ftplugin"
	"github.com/dshills/optscope/internal/option"
	"github.com/dshills/optscope/internal/optval"
)

// FiletypeHooks runs filetype initialization on a probe document.
type FiletypeHooks interface {
	Trigger(filetype string, buf ftplugin.Buffer) error
}

// DisplayApplier re-derives display state after display-affecting
// options are stored.
type DisplayApplier interface {
	Handles(name string) bool
	Apply(name string, value optval.OptVal) error
}

// Engine is the option-scope resolution engine.
type Engine struct {
	state   *editor.State
	reg     *option.Registry
	store   *store
	hooks   FiletypeHooks
	display DisplayApplier
	log     *log.Logger
}

// EngineOption configures an Engine during creation.
type EngineOption func(*Engine)

// WithState attaches an existing editor state.
func WithState(state *editor.State) EngineOption {
	return func(e *Engine) {
		e.state = state
	}
}

// WithRegistry attaches an option registry.
func WithRegistry(reg *option.Registry) EngineOption {
	return func(e *Engine) {
		e.reg = reg
	}
}

// WithHooks attaches a filetype hook runner.
func WithHooks(hooks FiletypeHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithDisplay attaches a display applier for terminal-affecting
// options.
func WithDisplay(applier DisplayApplier) EngineOption {
	return func(e *Engine) {
		e.display = applier
	}
}

// WithLogger sets the engine logger.
func WithLogger(logger *log.Logger) EngineOption {
	return func(e *Engine) {
		e.log = logger
	}
}

// New creates an engine. Without options it runs against a fresh
// editor state and the built-in option table, with logging disabled.
func New(opts ...EngineOption) *Engine {
	e := &Engine{
		store: newStore(),
		log:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.state == nil {
		e.state = editor.NewState()
	}
	if e.reg == nil {
		e.reg = option.NewWithDefaults()
	}
	return e
}

// State returns the editor state the engine resolves against.
func (e *Engine) State() *editor.State {
	return e.state
}

// Registry returns the option registry.
func (e *Engine) Registry() *option.Registry {
	return e.reg
}

// Get returns the value of an option. Like interactive ":set", the
// local value is returned when one is set, otherwise the global
// value; WithScope addresses one side explicitly. Local values come
// from the current buffer or window unless ForBuffer or ForWindow
// retargets the request. WithFiletype resolves the default for a
// filetype by probing an ephemeral document.
//
// The returned value is the caller's copy. If the option holds no
// value at the addressed scope the nil sentinel is returned with no
// error.
func (e *Engine) Get(name string, opts ...RequestOption) (optval.OptVal, error) {
	res, err := e.validate(name, buildRequest(opts), true)
	if err != nil {
		return optval.Nil(), err
	}

	if res.filetype != "" {
		cleanup, err := e.filetypeProbe(res.filetype)
		if err != nil {
			return optval.Nil(), err
		}
		defer cleanup()
	}

	token, err := e.switchContext(res)
	if err != nil {
		return optval.Nil(), err
	}
	defer token.restore()

	return e.readValue(res), nil
}

// Set stores a new option value. Like interactive ":set", global-local
// options update both the global and local value unless WithScope or a
// buffer target narrows the write; a window target without an explicit
// scope narrows a global-local option to its local value.
//
// The value is validated against the option's kind before anything is
// mutated. Display-affecting options are applied to the terminal after
// the store; an ApplyError reports a failed application but the stored
// value is kept.
func (e *Engine) Set(name string, value any, opts ...RequestOption) error {
	res, err := e.validate(name, buildRequest(opts), false)
	if err != nil {
		return err
	}

	// A window target without an explicit scope must not touch the
	// global side of a global-local option.
	if res.req == ReqWindow && res.scope == ScopeUnset && res.opt.Scope.GlobalLocal() {
		res.scope = ScopeLocal
	}

	v, err := optval.FromAny(value)
	if err != nil {
		return &TypeError{Option: name, Want: res.opt.Kind, Got: v.Kind()}
	}
	if err := checkValueKind(res, v); err != nil {
		return err
	}

	token, err := e.switchContext(res)
	if err != nil {
		return err
	}
	defer token.restore()

	e.writeValue(res, v)
	e.log.Debug("option set", "option", res.name, "value", v, "scope", res.scope)

	if e.display != nil && e.display.Handles(res.name) {
		if err := e.display.Apply(res.name, v); err != nil {
			// Store-then-apply: the stored value stands.
			e.log.Warn("display apply failed", "option", res.name, "err", err)
			return &ApplyError{Option: res.name, Err: err}
		}
	}

	return nil
}

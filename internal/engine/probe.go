package engine

import (
	"github.com/dshills/optscope/internal/editor"
	"github.com/dshills/optscope/internal/optval"
)

// probeBuffer is the view of the ephemeral document handed to
// filetype hooks. Option traffic goes through the full engine path so
// hooks see exactly what a caller would.
type probeBuffer struct {
	engine *Engine
	buf    *editor.Buffer
}

// SetOption sets a buffer-local option on the probe document.
func (p probeBuffer) SetOption(name string, value any) error {
	return p.engine.Set(name, value, ForBuffer(p.buf.ID), WithScope("local"))
}

// GetOption reads an option as seen from the probe document.
func (p probeBuffer) GetOption(name string) (any, error) {
	v, err := p.engine.Get(name, ForBuffer(p.buf.ID))
	if err != nil {
		return nil, err
	}
	return v.Any(), nil
}

// filetypeProbe builds an ephemeral unlisted document, redirects the
// current context to it, and runs filetype initialization on it so
// filetype-specific defaults resolve from its cells.
//
// The returned cleanup restores the prior context and destroys the
// document; the caller must run it on every exit path. On error no
// cleanup is returned and no residue is left behind.
func (e *Engine) filetypeProbe(filetype string) (func(), error) {
	buf, err := e.state.CreateEphemeralBuffer()
	if err != nil {
		return nil, &ProbeError{Msg: "could not create internal buffer", Err: err}
	}

	prev := e.state.CurrentBuffer()
	e.state.RedirectToBuffer(buf)

	cleanup := func() {
		e.state.RedirectToBuffer(prev)
		if err := e.state.DestroyBuffer(buf.ID); err != nil {
			e.log.Error("probe buffer teardown failed", "buffer", buf.ID, "err", err)
		}
	}

	// Keep the throwaway document inert: never written to disk, never
	// respecting modelines, gone once hidden.
	setup := []struct {
		name  string
		value optval.OptVal
	}{
		{"bufhidden", optval.Str("hide")},
		{"buftype", optval.Str("nofile")},
		{"swapfile", optval.Bool(false)},
		{"modeline", optval.Bool(false)},
		{"filetype", optval.Str(filetype)},
	}
	for _, s := range setup {
		buf.Cells.Set(e.reg.Lookup(s.name), s.value)
	}

	if e.hooks != nil {
		e.log.Debug("running filetype hooks", "filetype", filetype, "buffer", buf.ID)
		if err := e.hooks.Trigger(filetype, probeBuffer{engine: e, buf: buf}); err != nil {
			cleanup()
			return nil, &ProbeError{Msg: "filetype initialization failed", Err: err}
		}
	}

	return cleanup, nil
}

package engine

import "github.com/dshills/optscope/internal/editor"

// switchToken records what a context switch did so it can be undone.
// Switching to the already-current target records nothing; restoring
// such a token is a no-op. Restore is idempotent: a token restores at
// most once.
type switchToken struct {
	state    *editor.State
	req      ReqScope
	switched bool
	prevWin  *editor.Window
	prevBuf  *editor.Buffer
}

// switchContext temporarily makes the request's target current.
// Window switches are the only kind that can fail; on failure the
// current context is unchanged and a SwitchError is returned.
func (e *Engine) switchContext(res resolved) (*switchToken, error) {
	token := &switchToken{state: e.state, req: res.req}

	switch res.req {
	case ReqWindow:
		if res.win == e.state.CurrentWindow() {
			return token, nil
		}
		token.prevWin = e.state.CurrentWindow()
		token.prevBuf = e.state.CurrentBuffer()
		if err := e.state.SwitchToWindow(res.win); err != nil {
			return token, &SwitchError{Err: err}
		}
		token.switched = true
		e.log.Debug("switched window", "option", res.name, "from", token.prevWin.ID, "to", res.win.ID)

	case ReqBuffer:
		if res.buf == e.state.CurrentBuffer() {
			return token, nil
		}
		token.prevBuf = e.state.CurrentBuffer()
		// A buffer redirect cannot fail; it does not touch the layout.
		e.state.RedirectToBuffer(res.buf)
		token.switched = true
		e.log.Debug("redirected buffer", "option", res.name, "from", token.prevBuf.ID, "to", res.buf.ID)

	case ReqGlobal:
		// No switch needed.
	}

	return token, nil
}

// restore reverses exactly what switchContext performed.
func (t *switchToken) restore() {
	if t == nil || !t.switched {
		return
	}
	t.switched = false

	switch t.req {
	case ReqWindow:
		// The prior window is still attached; this cannot fail.
		_ = t.state.SwitchToWindow(t.prevWin)
		t.state.RedirectToBuffer(t.prevBuf)
	case ReqBuffer:
		t.state.RedirectToBuffer(t.prevBuf)
	case ReqGlobal:
	}
}

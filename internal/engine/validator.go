package engine

// validate checks a raw request against the option registry and
// normalizes it. It has no side effects and is deterministic for a
// given registry and editor state.
func (e *Engine) validate(name string, r Request, getting bool) (resolved, error) {
	res := resolved{name: name}

	if r.hasScope {
		switch r.scope {
		case "local":
			res.scope = ScopeLocal
		case "global":
			res.scope = ScopeGlobal
		default:
			return res, validationf("invalid scope %q: expected 'local' or 'global'", r.scope)
		}
	}

	if r.hasWin && r.hasBuf {
		return res, validationf("cannot use both 'win' and 'buf'")
	}

	if r.hasFiletype {
		if r.hasScope || r.hasWin || r.hasBuf {
			return res, validationf("cannot use 'filetype' with 'scope', 'buf' or 'win'")
		}
		if !getting {
			return res, validationf("cannot use 'filetype' when setting an option")
		}
		res.filetype = r.filetype
	}

	if r.hasWin {
		res.req = ReqWindow
		win, err := e.state.FindWindow(r.win)
		if err != nil {
			return res, validationf("invalid window handle: %v", err)
		}
		res.win = win
	}

	if r.hasBuf {
		res.req = ReqBuffer
		// A buffer target writes the local value; reads without an
		// explicit scope still fall back to the global value.
		if !getting && !r.hasScope {
			res.scope = ScopeLocal
		}
		buf, err := e.state.FindBuffer(r.buf)
		if err != nil {
			return res, validationf("invalid buffer handle: %v", err)
		}
		res.buf = buf
	}

	res.id = e.reg.Lookup(name)
	attrs := e.reg.Attrs(res.id)
	if !attrs.Valid() {
		// Hidden or unknown option.
		return res, validationf("unknown option %q", name)
	}
	res.opt = e.reg.Get(res.id)

	if res.req == ReqWindow || res.req == ReqBuffer {
		supported := attrs.Buffer
		if res.req == ReqWindow {
			supported = attrs.Window
		}
		if !supported {
			global := ""
			if attrs.Global {
				global = "global "
			}
			local := ""
			switch {
			case attrs.Buffer:
				local = "buffer-local "
			case attrs.Window:
				local = "window-local "
			}
			return res, validationf("'%s' cannot be passed for %s%soption %q",
				res.req, global, local, name)
		}
	}

	return res, nil
}

package engine

import (
	"errors"
	"testing"

	"github.com/dshills/optscope/internal/editor"
	"github.com/dshills/optscope/internal/ftplugin"
	"github.com/dshills/optscope/internal/optval"
)

const goHook = `
buf.set_option("tabstop", 4)
buf.set_option("shiftwidth", 4)
buf.set_option("expandtab", false)
`

func newProbeEngine(t *testing.T) *Engine {
	t.Helper()
	hooks := ftplugin.NewRunner()
	hooks.Register("go", goHook)
	hooks.Register("python", `buf.set_option("expandtab", true)`)
	hooks.Register("broken", `error("no such filetype module")`)
	return New(WithHooks(hooks))
}

func TestFiletypeGet(t *testing.T) {
	e := newProbeEngine(t)

	got := mustVal(t)(e.Get("tabstop", WithFiletype("go")))
	if !got.Equal(optval.Int(4)) {
		t.Errorf("tabstop for filetype go = %v, want 4", got)
	}

	got = mustVal(t)(e.Get("expandtab", WithFiletype("python")))
	if !got.Equal(optval.Bool(true)) {
		t.Errorf("expandtab for filetype python = %v, want true", got)
	}

	// The probe never touches the caller's buffer.
	cur := mustVal(t)(e.Get("tabstop"))
	if !cur.Equal(optval.Int(8)) {
		t.Errorf("tabstop for current buffer = %v, want default 8", cur)
	}
}

func TestFiletypeGetWithoutHook(t *testing.T) {
	e := newProbeEngine(t)

	// No hook registered: the probe document answers with the plain
	// default.
	got := mustVal(t)(e.Get("tabstop", WithFiletype("markdown")))
	if !got.Equal(optval.Int(8)) {
		t.Errorf("tabstop for unhooked filetype = %v, want 8", got)
	}
}

func TestFiletypeGetLeavesNoResidue(t *testing.T) {
	e := newProbeEngine(t)
	buffers := e.State().BufferCount()
	prevBuf := e.State().CurrentBuffer()
	prevWin := e.State().CurrentWindow()

	first := mustVal(t)(e.Get("shiftwidth", WithFiletype("go")))
	second := mustVal(t)(e.Get("shiftwidth", WithFiletype("go")))

	if !first.Equal(second) {
		t.Errorf("consecutive probes disagree: %v vs %v", first, second)
	}
	if got := e.State().BufferCount(); got != buffers {
		t.Errorf("buffer count = %d after probes, want %d", got, buffers)
	}
	if e.State().CurrentBuffer() != prevBuf || e.State().CurrentWindow() != prevWin {
		t.Error("probe must restore the current context")
	}
}

func TestFiletypeHookFailure(t *testing.T) {
	e := newProbeEngine(t)
	buffers := e.State().BufferCount()
	prevBuf := e.State().CurrentBuffer()

	_, err := e.Get("tabstop", WithFiletype("broken"))
	if !errors.Is(err, ErrProbe) {
		t.Fatalf("Get error = %v, want ErrProbe", err)
	}

	if got := e.State().BufferCount(); got != buffers {
		t.Errorf("buffer count = %d after failed probe, want %d", got, buffers)
	}
	if e.State().CurrentBuffer() != prevBuf {
		t.Error("failed probe must restore the current buffer")
	}
}

func TestFiletypeProbeBufferExhaustion(t *testing.T) {
	state := editor.NewState(editor.WithMaxBuffers(1))
	e := New(WithState(state), WithHooks(ftplugin.NewRunner()))

	_, err := e.Get("tabstop", WithFiletype("go"))
	if !errors.Is(err, ErrProbe) {
		t.Fatalf("Get error = %v, want ErrProbe", err)
	}
	if !errors.Is(err, editor.ErrTooManyBuffers) {
		t.Errorf("Get error = %v, want wrapped ErrTooManyBuffers", err)
	}
}

func TestFiletypeProbeDocumentShape(t *testing.T) {
	var seen struct {
		buftype  any
		swapfile any
		filetype any
	}
	hooks := ftplugin.NewRunner()
	hooks.Register("inspect", `
buf.set_option("tabstop", buf.get_option("tabstop"))
`)
	e := New(WithHooks(hooks))

	// Inspect the probe document through a Go-side hook instead.
	probe := &inspectHooks{seen: &seen}
	e2 := New(WithHooks(probe))
	if _, err := e2.Get("tabstop", WithFiletype("go")); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if seen.buftype != "nofile" {
		t.Errorf("probe buftype = %v, want nofile", seen.buftype)
	}
	if seen.swapfile != false {
		t.Errorf("probe swapfile = %v, want false", seen.swapfile)
	}
	if seen.filetype != "go" {
		t.Errorf("probe filetype = %v, want go", seen.filetype)
	}

	// The Lua path still resolves after the Go-side inspection.
	if _, err := e.Get("tabstop", WithFiletype("inspect")); err != nil {
		t.Fatalf("Get via lua hook: %v", err)
	}
}

// inspectHooks records the shape of the probe document it is handed.
type inspectHooks struct {
	seen *struct {
		buftype  any
		swapfile any
		filetype any
	}
}

func (h *inspectHooks) Trigger(filetype string, buf ftplugin.Buffer) error {
	h.seen.buftype, _ = buf.GetOption("buftype")
	h.seen.swapfile, _ = buf.GetOption("swapfile")
	h.seen.filetype, _ = buf.GetOption("filetype")
	return nil
}

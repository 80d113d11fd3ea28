// Package editor provides the buffer/window object model and the
// editor context the option engine resolves against.
//
// State holds the single logical "current context". The engine
// temporarily repoints it while resolving scope-correct values and is
// required to restore it on every exit path. State does no locking of
// its own; callers that share a State across goroutines must
// serialize access.
package editor

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Errors returned by editor state operations.
var (
	ErrBufferNotFound  = errors.New("buffer not found")
	ErrWindowNotFound  = errors.New("window not found")
	ErrWindowDetached  = errors.New("window is no longer part of the layout")
	ErrTooManyBuffers  = errors.New("buffer limit reached")
	ErrBufferIsCurrent = errors.New("cannot destroy the current buffer")
)

// BufferID identifies a buffer.
type BufferID int

// WindowID identifies a window.
type WindowID int

// Buffer is one editable document with its buffer-local option cells.
type Buffer struct {
	ID     BufferID
	Name   string
	Listed bool

	// Tag uniquely identifies this buffer instance across ID reuse.
	Tag string

	Cells *LocalCells
}

// Window is one viewport with its window-local option cells.
type Window struct {
	ID     WindowID
	Buffer *Buffer

	// attached is false once the window is closed. A held handle to a
	// detached window still resolves, but switching to it fails.
	attached bool

	Cells *LocalCells
}

// Attached reports whether the window is still part of the layout.
func (w *Window) Attached() bool {
	return w.attached
}

// State is the in-memory editor context.
type State struct {
	buffers map[BufferID]*Buffer
	windows map[WindowID]*Window

	curBuf *Buffer
	curWin *Window

	nextBuf BufferID
	nextWin WindowID

	maxBuffers int
}

// StateOption configures a State during creation.
type StateOption func(*State)

// WithMaxBuffers bounds how many buffers can exist at once.
// Zero means unlimited.
func WithMaxBuffers(max int) StateOption {
	return func(s *State) {
		if max > 0 {
			s.maxBuffers = max
		}
	}
}

// NewState creates a state with one listed buffer shown in one window,
// both current.
func NewState(opts ...StateOption) *State {
	s := &State{
		buffers: make(map[BufferID]*Buffer),
		windows: make(map[WindowID]*Window),
		nextBuf: 1,
		nextWin: 1000,
	}
	for _, opt := range opts {
		opt(s)
	}

	buf, err := s.CreateBuffer("")
	if err != nil {
		// The initial buffer never hits the limit check.
		panic(err)
	}
	s.curBuf = buf
	s.curWin = s.NewWindow(buf)
	return s
}

// CurrentBuffer returns the current buffer.
func (s *State) CurrentBuffer() *Buffer {
	return s.curBuf
}

// CurrentWindow returns the current window.
func (s *State) CurrentWindow() *Window {
	return s.curWin
}

// CreateBuffer allocates a listed buffer.
func (s *State) CreateBuffer(name string) (*Buffer, error) {
	return s.newBuffer(name, true)
}

// CreateEphemeralBuffer allocates an unlisted throwaway buffer, used
// as a probe target. It is never shown in a window and must be
// destroyed by the caller before the enclosing operation returns.
func (s *State) CreateEphemeralBuffer() (*Buffer, error) {
	tag := uuid.NewString()
	return s.newBuffer("probe://"+tag, false)
}

func (s *State) newBuffer(name string, listed bool) (*Buffer, error) {
	if s.maxBuffers > 0 && len(s.buffers) >= s.maxBuffers {
		return nil, fmt.Errorf("%w (%d)", ErrTooManyBuffers, s.maxBuffers)
	}

	buf := &Buffer{
		ID:     s.nextBuf,
		Name:   name,
		Listed: listed,
		Tag:    uuid.NewString(),
		Cells:  NewLocalCells(),
	}
	s.nextBuf++
	s.buffers[buf.ID] = buf
	return buf, nil
}

// DestroyBuffer removes a buffer. The current buffer cannot be
// destroyed; restore context first.
func (s *State) DestroyBuffer(id BufferID) error {
	buf, ok := s.buffers[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrBufferNotFound, id)
	}
	if buf == s.curBuf {
		return fmt.Errorf("%w: %d", ErrBufferIsCurrent, id)
	}
	delete(s.buffers, id)
	return nil
}

// NewWindow creates a window showing the given buffer.
func (s *State) NewWindow(buf *Buffer) *Window {
	win := &Window{
		ID:       s.nextWin,
		Buffer:   buf,
		attached: true,
		Cells:    NewLocalCells(),
	}
	s.nextWin++
	s.windows[win.ID] = win
	return win
}

// CloseWindow detaches a window from the layout. Held handles still
// resolve through FindWindow, but switching to the window fails.
func (s *State) CloseWindow(id WindowID) error {
	win, ok := s.windows[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrWindowNotFound, id)
	}
	win.attached = false
	return nil
}

// FindBuffer resolves a buffer handle.
func (s *State) FindBuffer(id BufferID) (*Buffer, error) {
	buf, ok := s.buffers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBufferNotFound, id)
	}
	return buf, nil
}

// FindWindow resolves a window handle.
func (s *State) FindWindow(id WindowID) (*Window, error) {
	win, ok := s.windows[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrWindowNotFound, id)
	}
	return win, nil
}

// SwitchToWindow makes a window current, along with its buffer.
// Fails for detached windows; on failure the current context is
// unchanged.
func (s *State) SwitchToWindow(win *Window) error {
	if !win.attached {
		return fmt.Errorf("%w: %d", ErrWindowDetached, win.ID)
	}
	s.curWin = win
	s.curBuf = win.Buffer
	return nil
}

// RedirectToBuffer repoints the current buffer without touching the
// window layout. This is a pure context redirect and cannot fail.
func (s *State) RedirectToBuffer(buf *Buffer) {
	s.curBuf = buf
}

// BufferCount returns the number of live buffers.
func (s *State) BufferCount() int {
	return len(s.buffers)
}

// ListedBufferCount returns the number of listed buffers.
func (s *State) ListedBufferCount() int {
	n := 0
	for _, buf := range s.buffers {
		if buf.Listed {
			n++
		}
	}
	return n
}

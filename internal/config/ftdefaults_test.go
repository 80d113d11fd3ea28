package config

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// recordingBuffer captures option assignments made by a hook.
type recordingBuffer struct {
	set    map[string]any
	failOn string
}

func (b *recordingBuffer) SetOption(name string, value any) error {
	if name == b.failOn {
		return fmt.Errorf("no such option %q", name)
	}
	if b.set == nil {
		b.set = make(map[string]any)
	}
	b.set[name] = value
	return nil
}

func (b *recordingBuffer) GetOption(name string) (any, error) {
	return b.set[name], nil
}

func TestFiletypeDefaultsTrigger(t *testing.T) {
	f, err := LoadReader(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	hook := NewFiletypeDefaults(f)

	buf := &recordingBuffer{}
	if err := hook.Trigger("go", buf); err != nil {
		t.Fatalf("Trigger: %v", err)
	}

	if got := buf.set["tabstop"]; got != int64(4) {
		t.Errorf("tabstop = %v, want 4", got)
	}
	if got := buf.set["expandtab"]; got != false {
		t.Errorf("expandtab = %v, want false", got)
	}
}

func TestFiletypeDefaultsUnknownFiletype(t *testing.T) {
	hook := NewFiletypeDefaults(&File{})

	buf := &recordingBuffer{}
	if err := hook.Trigger("rust", buf); err != nil {
		t.Fatalf("unknown filetype must be a no-op, got %v", err)
	}
	if len(buf.set) != 0 {
		t.Errorf("unknown filetype assigned options: %v", buf.set)
	}
}

func TestFiletypeDefaultsError(t *testing.T) {
	f := &File{Filetype: map[string]map[string]any{
		"go": {"bogus": 1, "tabstop": 4},
	}}
	hook := NewFiletypeDefaults(f)

	buf := &recordingBuffer{failOn: "bogus"}
	err := hook.Trigger("go", buf)
	if err == nil {
		t.Fatal("expected error for failing assignment")
	}
	if !strings.Contains(err.Error(), `"bogus"`) {
		t.Errorf("error %q does not name the failing option", err)
	}

	var target *ParseError
	if errors.As(err, &target) {
		t.Error("assignment failure must not be a ParseError")
	}
}

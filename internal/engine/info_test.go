package engine

import (
	"errors"
	"testing"
)

func TestInfo(t *testing.T) {
	e := New()

	tests := []struct {
		option      string
		wantName    string
		wantShort   string
		wantType    string
		wantDefault any
		wantScope   string
		wantGL      bool
	}{
		{"tabstop", "tabstop", "ts", "number", int64(8), "buf", false},
		{"ts", "tabstop", "ts", "number", int64(8), "buf", false},
		{"wrap", "wrap", "", "boolean", true, "win", false},
		{"scrolloff", "scrolloff", "so", "number", int64(0), "buf", true},
		{"statusline", "statusline", "stl", "string", "", "win", true},
		{"laststatus", "laststatus", "ls", "number", int64(1), "global", false},
	}

	for _, tt := range tests {
		info, err := e.Info(tt.option)
		if err != nil {
			t.Fatalf("Info(%s): %v", tt.option, err)
		}
		if info.Name != tt.wantName {
			t.Errorf("Info(%s).Name = %q, want %q", tt.option, info.Name, tt.wantName)
		}
		if info.Shortname != tt.wantShort {
			t.Errorf("Info(%s).Shortname = %q, want %q", tt.option, info.Shortname, tt.wantShort)
		}
		if info.Type != tt.wantType {
			t.Errorf("Info(%s).Type = %q, want %q", tt.option, info.Type, tt.wantType)
		}
		if info.Default != tt.wantDefault {
			t.Errorf("Info(%s).Default = %v, want %v", tt.option, info.Default, tt.wantDefault)
		}
		if info.Scope != tt.wantScope {
			t.Errorf("Info(%s).Scope = %q, want %q", tt.option, info.Scope, tt.wantScope)
		}
		if info.GlobalLocal != tt.wantGL {
			t.Errorf("Info(%s).GlobalLocal = %v, want %v", tt.option, info.GlobalLocal, tt.wantGL)
		}
	}
}

func TestInfoWasSet(t *testing.T) {
	e := New()

	info, err := e.Info("tabstop")
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.WasSet {
		t.Error("WasSet before any set")
	}

	if err := e.Set("tabstop", 4); err != nil {
		t.Fatalf("Set: %v", err)
	}

	info, err = e.Info("tabstop")
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if !info.WasSet {
		t.Error("WasSet false after set")
	}
}

func TestInfoValidatesLikeGet(t *testing.T) {
	e := New()

	if _, err := e.Info("nosuchoption"); !errors.Is(err, ErrValidation) {
		t.Errorf("Info(nosuchoption) error = %v, want ErrValidation", err)
	}
	if _, err := e.Info("compatible"); !errors.Is(err, ErrValidation) {
		t.Errorf("Info(compatible) error = %v, want ErrValidation for hidden option", err)
	}
	win := e.State().CurrentWindow()
	if _, err := e.Info("laststatus", ForWindow(win.ID)); !errors.Is(err, ErrValidation) {
		t.Errorf("Info(laststatus, win) error = %v, want ErrValidation", err)
	}
}

func TestAllInfo(t *testing.T) {
	e := New()
	all := e.AllInfo()

	if _, ok := all["tabstop"]; !ok {
		t.Error("AllInfo misses tabstop")
	}
	if _, ok := all["compatible"]; ok {
		t.Error("AllInfo must not include hidden options")
	}
	if got := all["scrolloff"]; !got.GlobalLocal {
		t.Error("AllInfo scrolloff must report global-local")
	}
	if len(all) == 0 {
		t.Fatal("AllInfo returned nothing")
	}
}

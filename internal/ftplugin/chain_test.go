package ftplugin

import (
	"errors"
	"testing"
)

type funcHook func(filetype string, buf Buffer) error

func (f funcHook) Trigger(filetype string, buf Buffer) error {
	return f(filetype, buf)
}

func TestChainRunsInOrder(t *testing.T) {
	var order []string
	chain := Chain{
		funcHook(func(string, Buffer) error { order = append(order, "first"); return nil }),
		funcHook(func(string, Buffer) error { order = append(order, "second"); return nil }),
	}

	if err := chain.Trigger("go", nil); err != nil {
		t.Fatalf("Trigger: %v", err)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("order = %v", order)
	}
}

func TestChainStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	var ran bool
	chain := Chain{
		funcHook(func(string, Buffer) error { return boom }),
		funcHook(func(string, Buffer) error { ran = true; return nil }),
	}

	if err := chain.Trigger("go", nil); !errors.Is(err, boom) {
		t.Fatalf("Trigger error = %v, want boom", err)
	}
	if ran {
		t.Error("chain continued past a failing hook")
	}
}

func TestEmptyChain(t *testing.T) {
	if err := (Chain{}).Trigger("go", nil); err != nil {
		t.Fatalf("empty chain: %v", err)
	}
}

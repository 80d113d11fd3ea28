package engine

import "github.com/dshills/optscope/internal/option"

// OptionInfo is a point-in-time snapshot of an option's metadata.
type OptionInfo struct {
	// Name is the full option name.
	Name string `json:"name"`
	// Shortname is the abbreviated name, if any.
	Shortname string `json:"shortname"`
	// Type is the option's value kind: "boolean", "number", or "string".
	Type string `json:"type"`
	// Default is the native representation of the default value.
	Default any `json:"default"`
	// WasSet reports whether the option was ever explicitly set.
	WasSet bool `json:"was_set"`
	// Scope is "global", "win", or "buf".
	Scope string `json:"scope"`
	// GlobalLocal reports whether a win or buf option also has a
	// global value.
	GlobalLocal bool `json:"global_local"`
	// Description is human-readable documentation.
	Description string `json:"description"`
}

// infoScope maps an option's scope kind to the snapshot keyword.
func infoScope(kind option.ScopeKind) string {
	switch kind {
	case option.WindowLocal, option.GlobalWindow:
		return "win"
	case option.BufferLocal, option.GlobalBuffer:
		return "buf"
	default:
		return "global"
	}
}

func (e *Engine) snapshot(id option.ID, opt *option.Option) OptionInfo {
	return OptionInfo{
		Name:        opt.Name,
		Shortname:   opt.Short,
		Type:        opt.Kind.String(),
		Default:     opt.Default.Any(),
		WasSet:      e.store.WasSet(id),
		Scope:       infoScope(opt.Scope),
		GlobalLocal: opt.Scope.GlobalLocal(),
		Description: opt.Description,
	}
}

// Info returns the metadata snapshot for one option. Target options
// are validated the same way Get validates them, so requesting info
// for an unsupported scope fails with the same corrective message.
func (e *Engine) Info(name string, opts ...RequestOption) (OptionInfo, error) {
	res, err := e.validate(name, buildRequest(opts), false)
	if err != nil {
		return OptionInfo{}, err
	}
	return e.snapshot(res.id, res.opt), nil
}

// AllInfo returns metadata snapshots for every visible option, keyed
// by full name.
func (e *Engine) AllInfo() map[string]OptionInfo {
	result := make(map[string]OptionInfo)
	for _, opt := range e.reg.All() {
		if opt.Hidden {
			continue
		}
		id := e.reg.Lookup(opt.Name)
		result[opt.Name] = e.snapshot(id, opt)
	}
	return result
}

package config

import (
	"fmt"
	"sort"

	"github.com/dshills/optscope/internal/ftplugin"
)

// FiletypeDefaults applies the configuration's per-filetype option
// tables during filetype initialization. It satisfies the same hook
// surface as the Lua runner and composes with it through
// ftplugin.Chain.
type FiletypeDefaults struct {
	tables map[string]map[string]any
}

// NewFiletypeDefaults builds the hook from a parsed configuration.
func NewFiletypeDefaults(f *File) *FiletypeDefaults {
	return &FiletypeDefaults{tables: f.Filetype}
}

// Trigger assigns the configured defaults for a filetype to the
// buffer. Filetypes without a table are a no-op.
func (d *FiletypeDefaults) Trigger(filetype string, buf ftplugin.Buffer) error {
	table, ok := d.tables[filetype]
	if !ok {
		return nil
	}

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := buf.SetOption(name, table[name]); err != nil {
			return fmt.Errorf("filetype %q default %q: %w", filetype, name, err)
		}
	}
	return nil
}

package option

import "github.com/dshills/optscope/internal/optval"

// RegisterDefaults registers the built-in option table.
func (r *Registry) RegisterDefaults() {
	// Window-local display options.
	r.MustRegister(Option{
		Name:        "wrap",
		Kind:        optval.KindBool,
		Scope:       WindowLocal,
		Default:     optval.Bool(true),
		Description: "Wrap long lines at the window edge",
	})

	r.MustRegister(Option{
		Name:        "number",
		Short:       "nu",
		Kind:        optval.KindBool,
		Scope:       WindowLocal,
		Default:     optval.Bool(false),
		Description: "Show line numbers",
	})

	r.MustRegister(Option{
		Name:        "cursorline",
		Short:       "cul",
		Kind:        optval.KindBool,
		Scope:       WindowLocal,
		Default:     optval.Bool(false),
		Description: "Highlight the line under the cursor",
	})

	// Buffer-local editing options.
	r.MustRegister(Option{
		Name:        "tabstop",
		Short:       "ts",
		Kind:        optval.KindInt,
		Scope:       BufferLocal,
		Default:     optval.Int(8),
		Description: "Number of spaces a tab counts for",
	})

	r.MustRegister(Option{
		Name:        "shiftwidth",
		Short:       "sw",
		Kind:        optval.KindInt,
		Scope:       BufferLocal,
		Default:     optval.Int(8),
		Description: "Number of spaces used for each indent step",
	})

	r.MustRegister(Option{
		Name:        "expandtab",
		Short:       "et",
		Kind:        optval.KindBool,
		Scope:       BufferLocal,
		Default:     optval.Bool(false),
		Description: "Insert spaces when pressing Tab",
	})

	r.MustRegister(Option{
		Name:        "filetype",
		Short:       "ft",
		Kind:        optval.KindStr,
		Scope:       BufferLocal,
		Default:     optval.Str(""),
		Description: "Type of file, used to select initialization hooks",
	})

	r.MustRegister(Option{
		Name:        "buftype",
		Short:       "bt",
		Kind:        optval.KindStr,
		Scope:       BufferLocal,
		Default:     optval.Str(""),
		Description: "Special buffer type, empty for normal buffers",
	})

	r.MustRegister(Option{
		Name:        "bufhidden",
		Short:       "bh",
		Kind:        optval.KindStr,
		Scope:       BufferLocal,
		Default:     optval.Str(""),
		Description: "What happens when a buffer is no longer shown",
	})

	r.MustRegister(Option{
		Name:        "swapfile",
		Short:       "swf",
		Kind:        optval.KindBool,
		Scope:       BufferLocal,
		Default:     optval.Bool(true),
		Description: "Use a swapfile for the buffer",
	})

	r.MustRegister(Option{
		Name:        "modeline",
		Short:       "ml",
		Kind:        optval.KindBool,
		Scope:       BufferLocal,
		Default:     optval.Bool(true),
		Description: "Honor modelines when reading a buffer",
	})

	// Global-local options: a global default with per-target overrides.
	r.MustRegister(Option{
		Name:        "scrolloff",
		Short:       "so",
		Kind:        optval.KindInt,
		Scope:       GlobalBuffer,
		Default:     optval.Int(0),
		Description: "Minimum lines to keep above and below the cursor",
	})

	r.MustRegister(Option{
		Name:        "statusline",
		Short:       "stl",
		Kind:        optval.KindStr,
		Scope:       GlobalWindow,
		Default:     optval.Str(""),
		Description: "Content of the status line",
	})

	r.MustRegister(Option{
		Name:        "undolevels",
		Short:       "ul",
		Kind:        optval.KindInt,
		Scope:       GlobalBuffer,
		Default:     optval.Int(1000),
		Description: "Maximum number of undoable changes",
	})

	r.MustRegister(Option{
		Name:        "makeprg",
		Short:       "mp",
		Kind:        optval.KindStr,
		Scope:       GlobalBuffer,
		Default:     optval.Str("make"),
		Description: "Program used by the build command",
	})

	// Global options.
	r.MustRegister(Option{
		Name:        "laststatus",
		Short:       "ls",
		Kind:        optval.KindInt,
		Scope:       GlobalOnly,
		Default:     optval.Int(1),
		Description: "When the status line is shown",
	})

	r.MustRegister(Option{
		Name:        "background",
		Short:       "bg",
		Kind:        optval.KindStr,
		Scope:       GlobalOnly,
		Default:     optval.Str("dark"),
		Description: "Background color brightness, adjusts default styles",
	})

	r.MustRegister(Option{
		Name:        "termguicolors",
		Short:       "tgc",
		Kind:        optval.KindBool,
		Scope:       GlobalOnly,
		Default:     optval.Bool(false),
		Description: "Use 24-bit colors in the terminal",
	})

	// Terminal capability option: only ever holds a global value.
	r.MustRegister(Option{
		Name:        "term",
		Kind:        optval.KindStr,
		Scope:       GlobalOnly,
		Default:     optval.Str(""),
		TTYOnly:     true,
		Description: "Name of the terminal",
	})

	// Hidden option kept for compatibility; behaves like an unknown one.
	r.MustRegister(Option{
		Name:        "compatible",
		Short:       "cp",
		Kind:        optval.KindBool,
		Scope:       GlobalOnly,
		Default:     optval.Bool(false),
		Hidden:      true,
		Description: "Legacy option, no longer backed by storage",
	})
}

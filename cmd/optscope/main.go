// Package main is the command line front end for the option engine.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dshills/optscope/internal/config"
	"github.com/dshills/optscope/internal/engine"
	"github.com/dshills/optscope/internal/ftplugin"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var hooksDir string
	var scope string
	var filetype string
	var logLevel string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "Path to a TOML configuration file")
	flag.StringVar(&hooksDir, "hooks", "", "Directory of <filetype>.lua initialization hooks")
	flag.StringVar(&scope, "scope", "", "Explicit value scope: local or global")
	flag.StringVar(&filetype, "filetype", "", "Resolve the default for a filetype (get only)")
	flag.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "optscope - inspect and resolve scoped editor options\n\n")
		fmt.Fprintf(os.Stderr, "Usage: optscope [options] <command> [args...]\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  get <name>            Resolve an option value\n")
		fmt.Fprintf(os.Stderr, "  set <name> <value>    Store an option value, then print it back\n")
		fmt.Fprintf(os.Stderr, "  info <name>           Show one option's metadata as JSON\n")
		fmt.Fprintf(os.Stderr, "  list                  Show every option's metadata as JSON\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  optscope get tabstop\n")
		fmt.Fprintf(os.Stderr, "  optscope -hooks ./ftplugin -filetype go get tabstop\n")
		fmt.Fprintf(os.Stderr, "  optscope -scope global set scrolloff 2\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("optscope %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	}

	level, err := log.ParseLevel(logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", logLevel)
		return 1
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level, Prefix: "optscope"})

	cfg := &config.File{}
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	cfg.ApplyEnv()

	runner := ftplugin.NewRunner()
	if hooksDir != "" {
		if err := loadHooks(runner, hooksDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	// Config defaults run first so Lua hooks can refine them.
	hooks := ftplugin.Chain{config.NewFiletypeDefaults(cfg), runner}

	eng := engine.New(
		engine.WithHooks(hooks),
		engine.WithLogger(logger),
	)

	if err := cfg.Apply(func(name string, value any) error {
		return eng.Set(name, value)
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var reqOpts []engine.RequestOption
	if scope != "" {
		reqOpts = append(reqOpts, engine.WithScope(scope))
	}
	if filetype != "" {
		reqOpts = append(reqOpts, engine.WithFiletype(filetype))
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return 2
	}

	switch args[0] {
	case "get":
		if len(args) != 2 {
			fmt.Fprintf(os.Stderr, "Error: usage: optscope get <name>\n")
			return 2
		}
		v, err := eng.Get(args[1], reqOpts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(v)
		return 0

	case "set":
		if len(args) != 3 {
			fmt.Fprintf(os.Stderr, "Error: usage: optscope set <name> <value>\n")
			return 2
		}
		if err := eng.Set(args[1], parseValue(args[2]), reqOpts...); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		v, err := eng.Get(args[1], reqOpts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(v)
		return 0

	case "info":
		if len(args) != 2 {
			fmt.Fprintf(os.Stderr, "Error: usage: optscope info <name>\n")
			return 2
		}
		info, err := eng.Info(args[1], reqOpts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return printJSON(info)

	case "list":
		all := eng.AllInfo()
		names := make([]string, 0, len(all))
		for name := range all {
			names = append(names, name)
		}
		sort.Strings(names)
		infos := make([]engine.OptionInfo, 0, len(names))
		for _, name := range names {
			infos = append(infos, all[name])
		}
		return printJSON(infos)

	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", args[0])
		flag.Usage()
		return 2
	}
}

// loadHooks registers every <filetype>.lua file in dir.
func loadHooks(hooks *ftplugin.Runner, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading hooks directory: %w", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".lua") {
			continue
		}
		script, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("reading hook %s: %w", name, err)
		}
		hooks.Register(strings.TrimSuffix(name, ".lua"), string(script))
	}
	return nil
}

// parseValue maps a command line argument to the native option value:
// booleans and integers when the text parses as one, a string otherwise.
func parseValue(text string) any {
	switch text {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return n
	}
	return text
}

func printJSON(v any) int {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Println(string(out))
	return 0
}

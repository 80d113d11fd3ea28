// Package config loads option values from a TOML file and the
// environment and applies them to an option engine at startup.
//
// The file carries a flat table of option assignments plus optional
// per-filetype tables:
//
//	[options]
//	tabstop = 4
//	wrap = false
//
//	[filetype.go]
//	tabstop = 4
//	expandtab = false
//
// Environment variables prefixed with OPTSCOPE_ override the file,
// e.g. OPTSCOPE_TABSTOP=2.
package config

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "OPTSCOPE_"

// File is a parsed configuration file.
type File struct {
	// Options are global option assignments.
	Options map[string]any `toml:"options"`
	// Filetype holds per-filetype option defaults, keyed by filetype.
	Filetype map[string]map[string]any `toml:"filetype"`
}

// ParseError describes a malformed configuration file.
type ParseError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads a configuration file. A missing file is not an error; it
// loads as an empty configuration.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadReader reads a configuration from an io.Reader.
func LoadReader(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse("<reader>", data)
}

func parse(path string, data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	// TOML integers decode as int64, which the engine takes natively;
	// floats have no option kind and are rejected when applied.
	return &f, nil
}

// ApplyEnv overlays OPTSCOPE_-prefixed environment variables onto the
// global option assignments. The variable name after the prefix is the
// option name, lowercased.
func (f *File) ApplyEnv() {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, EnvPrefix) {
			continue
		}
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if name == "" {
			continue
		}
		if f.Options == nil {
			f.Options = make(map[string]any)
		}
		f.Options[name] = parseValue(value)
	}
}

// Apply writes every global option assignment through set, in name
// order so failures are deterministic. The first failure stops the
// apply and is returned with the option name attached.
func (f *File) Apply(set func(name string, value any) error) error {
	names := make([]string, 0, len(f.Options))
	for name := range f.Options {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := set(name, f.Options[name]); err != nil {
			return fmt.Errorf("config option %q: %w", name, err)
		}
	}
	return nil
}

// parseValue maps an environment variable string to the native option
// value: booleans and integers when the text parses as one, a string
// otherwise.
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

// Package option provides the option registry: the table of known
// options with their value kinds, scope capabilities, and defaults.
//
// The registry is read-only to the resolution engine. Options are
// addressed by a stable ID after a name lookup; an invalid ID never
// resolves to a descriptor.
package option

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dshills/optscope/internal/optval"
)

// ID is a stable index into the registry.
type ID int

// IDInvalid is returned by Lookup for unknown names.
const IDInvalid ID = -1

// ErrAlreadyRegistered is returned when registering a duplicate option.
var ErrAlreadyRegistered = fmt.Errorf("option already registered")

// Option describes a single named option.
type Option struct {
	// Name is the full option name (e.g., "tabstop").
	Name string

	// Short is the abbreviated name (e.g., "ts"). Optional.
	Short string

	// Kind is the option's value kind. Only booleans, integers, and
	// strings are valid option kinds.
	Kind optval.Kind

	// Scope declares where the option holds values.
	Scope ScopeKind

	// Default is the default value.
	Default optval.OptVal

	// Hidden options are registered but expose no value storage.
	// Lookups treat them like unknown options.
	Hidden bool

	// TTYOnly options describe terminal capabilities and only ever
	// hold a global value.
	TTYOnly bool

	// Description is human-readable documentation.
	Description string
}

// Registry maintains all known option definitions.
type Registry struct {
	mu      sync.RWMutex
	byID    []*Option
	byName  map[string]ID
	byShort map[string]ID
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byName:  make(map[string]ID),
		byShort: make(map[string]ID),
	}
}

// NewWithDefaults creates a registry with the built-in option table.
func NewWithDefaults() *Registry {
	r := New()
	r.RegisterDefaults()
	return r
}

// Register adds an option definition. Returns an error if the name or
// short name is already taken.
func (r *Registry) Register(opt Option) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[opt.Name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, opt.Name)
	}
	if opt.Short != "" {
		if _, exists := r.byShort[opt.Short]; exists {
			return fmt.Errorf("%w: %s", ErrAlreadyRegistered, opt.Short)
		}
	}

	o := &opt
	id := ID(len(r.byID))
	r.byID = append(r.byID, o)
	r.byName[opt.Name] = id
	if opt.Short != "" {
		r.byShort[opt.Short] = id
	}
	return nil
}

// MustRegister registers an option and panics on error. Used for the
// built-in table at init time.
func (r *Registry) MustRegister(opt Option) {
	if err := r.Register(opt); err != nil {
		panic(err)
	}
}

// Lookup resolves a full or short option name to its ID.
// Returns IDInvalid for unknown names.
func (r *Registry) Lookup(name string) ID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id, ok := r.byName[name]; ok {
		return id
	}
	if id, ok := r.byShort[name]; ok {
		return id
	}
	return IDInvalid
}

// Get returns the option descriptor for an ID, or nil for IDInvalid
// and out-of-range IDs.
func (r *Registry) Get(id ID) *Option {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id < 0 || int(id) >= len(r.byID) {
		return nil
	}
	return r.byID[id]
}

// All returns all registered options sorted by name.
func (r *Registry) All() []*Option {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Option, len(r.byID))
	copy(result, r.byID)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Attrs describes the capability surface of an option as seen by the
// validator. The zero value means hidden or unknown.
type Attrs struct {
	Global bool
	Window bool
	Buffer bool
}

// Valid reports whether the option is known and visible.
func (a Attrs) Valid() bool {
	return a.Global || a.Window || a.Buffer
}

// Attrs returns the capability surface for an option. Hidden and
// unknown options return the zero Attrs.
//
// Global is advertised only for options with a global value of their
// own (global-only and global-local); the seed copy behind purely
// local options is a storage detail, not a capability.
func (r *Registry) Attrs(id ID) Attrs {
	opt := r.Get(id)
	if opt == nil || opt.Hidden {
		return Attrs{}
	}
	return Attrs{
		Global: opt.Scope == GlobalOnly || opt.Scope.GlobalLocal(),
		Window: opt.Scope.HasWindow(),
		Buffer: opt.Scope.HasBuffer(),
	}
}

// IsTTYOnly reports whether a name refers to a terminal-capability
// option. Names with the "t_" prefix are always terminal codes.
func (r *Registry) IsTTYOnly(name string) bool {
	if strings.HasPrefix(name, "t_") {
		return true
	}
	id := r.Lookup(name)
	opt := r.Get(id)
	return opt != nil && opt.TTYOnly
}

// Package registry maps the check names appearing in suite descriptors to
// base-check definitions. Lookup is explicit: the collaborator owning the
// check library registers every definition at process startup, so a
// descriptor can only reach code that was deliberately exposed.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/log"

	"github.com/compliance-tools/suitegen/checklib"
)

// ResolutionError reports a check name with no registered definition
type ResolutionError struct {
	Name string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("no base check registered under %q", e.Name)
}

// IsResolutionError checks if the error is or wraps a ResolutionError
func IsResolutionError(err error) bool {
	var resErr *ResolutionError
	return err != nil && errors.As(err, &resErr)
}

// Registry manages base-check definitions and their descriptor names
type Registry struct {
	config      Config
	mu          sync.RWMutex
	definitions map[string]checklib.Definition
}

// Config contains registry configuration
type Config struct {
	Log log.Logger
}

// NewRegistry creates a new registry instance
func NewRegistry(cfg Config) *Registry {
	if cfg.Log == nil {
		cfg.Log = log.New()
	}
	return &Registry{
		config:      cfg,
		definitions: make(map[string]checklib.Definition),
	}
}

// Register adds a base-check definition under the given descriptor name.
// Registering the same name twice is an error; a silently replaced check
// would change what existing descriptors synthesize to.
func (r *Registry) Register(name string, def checklib.Definition) error {
	if name == "" {
		return fmt.Errorf("check name is required")
	}
	if def.New == nil {
		return fmt.Errorf("check %q has no constructor", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[name]; exists {
		return fmt.Errorf("check %q is already registered", name)
	}
	r.definitions[name] = def
	r.config.Log.Debug("Registered base check", "name", name)
	return nil
}

// Resolve returns the definition registered under name, or a
// ResolutionError when none exists
func (r *Registry) Resolve(name string) (checklib.Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.definitions[name]
	if !ok {
		return checklib.Definition{}, &ResolutionError{Name: name}
	}
	return def, nil
}

// Names returns every registered check name, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.definitions))
	for name := range r.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry that stock and host-provided
// checks register into at startup
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry(Config{})
	})
	return defaultRegistry
}

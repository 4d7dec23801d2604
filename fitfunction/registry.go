package fitfunction

import (
	"fmt"
	"slices"
	"sync"
)

// Registry maps fit function names to FitFunction values.
// The zero value is not usable, use NewRegistry.
type Registry struct {
	mu        sync.RWMutex
	functions map[FunctionNameString]FitFunction
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		functions: make(map[FunctionNameString]FitFunction),
	}
}

// Register adds a FitFunction to the registry under its name.
// Returns an error if the name is empty or a function with the same name is
// already registered.
func (r *Registry) Register(fn FitFunction) error {
	if fn.Name() == "" {
		return ErrEmptyFunctionName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.functions[fn.Name()]; exists {
		return fmt.Errorf("%w: %q", ErrFunctionAlreadyRegistered, fn.Name())
	}

	r.functions[fn.Name()] = fn

	return nil
}

// Get returns the FitFunction registered under the given name.
func (r *Registry) Get(name FunctionNameString) (FitFunction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, exists := r.functions[name]
	if !exists {
		return FitFunction{}, fmt.Errorf("%w: %q", ErrFunctionNotRegistered, name)
	}

	return fn, nil
}

// Names returns the sorted names of all registered functions.
func (r *Registry) Names() []FunctionNameString {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]FunctionNameString, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// defaultRegistry holds the builtin model functions.
var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	registry := NewRegistry()
	for _, fn := range []FitFunction{Linear, Constant, Parabolic, Hyperbolic, Exponential} {
		if err := registry.Register(fn); err != nil {
			panic(err)
		}
	}

	return registry
}

// Register adds a FitFunction to the default registry.
func Register(fn FitFunction) error {
	return defaultRegistry.Register(fn)
}

// Get returns a FitFunction from the default registry.
func Get(name FunctionNameString) (FitFunction, error) {
	return defaultRegistry.Get(name)
}

// Names returns the sorted names of all functions in the default registry.
func Names() []FunctionNameString {
	return defaultRegistry.Names()
}

package engine

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-pedalboard/board"
)

// Factory builds one Runtime instance for an effect.
type Factory func(ctx Context) (Runtime, error)

// Registry maps effect kinds to their factories.
type Registry struct {
	factories map[board.Kind]Factory
}

var errDuplicateEffect = errors.New("duplicate effect kind")

// ErrUnknownEffect is returned for an effect kind without a factory.
var ErrUnknownEffect = errors.New("unknown effect kind")

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[board.Kind]Factory)}
}

// Register adds a factory for the given effect kind.
func (r *Registry) Register(kind board.Kind, factory Factory) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownEffect, int(kind))
	}

	if factory == nil {
		return errors.New("nil factory")
	}

	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("%w: %s", errDuplicateEffect, kind)
	}

	r.factories[kind] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(kind board.Kind, factory Factory) {
	err := r.Register(kind, factory)
	if err != nil {
		panic("engine registry: " + err.Error())
	}
}

// Lookup returns the factory for the given effect kind, or nil.
func (r *Registry) Lookup(kind board.Kind) Factory {
	return r.factories[kind]
}

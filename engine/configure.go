package engine

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-pedalboard/board"
)

var errEffectMismatch = errors.New("effect does not match runtime")

func wrapConfigureErr(kind board.Kind, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("engine: configure %s: %w", kind, err)
}

// effectAs asserts that fx carries the settings type a runtime expects.
func effectAs[T board.Effect](fx board.Effect) (T, error) {
	v, ok := fx.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %T", errEffectMismatch, fx)
	}

	return v, nil
}

package agent

import (
	"errors"
	"fmt"

	"travel-assistant/internal/model"
)

var (
	// ErrCapabilityUnavailable is returned by providers with no upstream configured.
	ErrCapabilityUnavailable = errors.New("agent: capability unavailable")

	// ErrMissingProvider means the registry does not cover every capability.
	ErrMissingProvider = errors.New("agent: missing provider")

	// ErrProviderPanic wraps a recovered panic from a provider.
	ErrProviderPanic = errors.New("agent: provider panicked")
)

// InvokeError attaches the capability to a provider failure.
type InvokeError struct {
	Capability model.CapabilityID
	Err        error
}

func (e *InvokeError) Error() string {
	return fmt.Sprintf("capability %s: %v", e.Capability, e.Err)
}

func (e *InvokeError) Unwrap() error {
	return e.Err
}

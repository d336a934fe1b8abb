package providers

import (
	"context"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/model"
)

// Unavailable stands in for a capability with no upstream configured.
type Unavailable struct {
	capability model.CapabilityID
}

var _ agent.Provider = (*Unavailable)(nil)

// NewUnavailable creates a provider that always fails with agent.ErrCapabilityUnavailable.
func NewUnavailable(capability model.CapabilityID) *Unavailable {
	return &Unavailable{capability: capability}
}

func (u *Unavailable) Capability() model.CapabilityID {
	return u.capability
}

func (u *Unavailable) Invoke(context.Context, string, []model.Turn) (string, error) {
	return "", agent.ErrCapabilityUnavailable
}

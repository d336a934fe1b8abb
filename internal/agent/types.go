package agent

import (
	"context"
	"fmt"

	"travel-assistant/internal/model"
)

// Provider answers one capability. Every capability implements this same contract.
type Provider interface {
	// Capability returns the capability this provider serves.
	Capability() model.CapabilityID

	// Invoke answers query given the turns that precede it.
	Invoke(ctx context.Context, query string, history []model.Turn) (string, error)
}

// Registry maps every capability to exactly one provider.
type Registry struct {
	providers map[model.CapabilityID]Provider
}

// NewRegistry registers providers and checks that all seven capabilities are covered.
func NewRegistry(providers ...Provider) (*Registry, error) {
	r := &Registry{
		providers: make(map[model.CapabilityID]Provider, len(providers)),
	}
	for _, p := range providers {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Register adds a provider, replacing any earlier one for the same capability.
func (r *Registry) Register(p Provider) error {
	id := p.Capability()
	if !id.Valid() {
		return fmt.Errorf("agent: unknown capability %q", id)
	}
	r.providers[id] = p
	return nil
}

// Validate fails with ErrMissingProvider if any capability has no provider.
func (r *Registry) Validate() error {
	for _, id := range model.AllCapabilities() {
		if _, ok := r.providers[id]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingProvider, id)
		}
	}
	return nil
}

// Get retrieves the provider for a capability.
func (r *Registry) Get(id model.CapabilityID) (Provider, bool) {
	p, ok := r.providers[id]
	return p, ok
}

// List returns all registered providers in presentation order.
func (r *Registry) List() []Provider {
	out := make([]Provider, 0, len(r.providers))
	for _, id := range model.PresentationOrder {
		if p, ok := r.providers[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

package providers

import (
	"context"
	"net/http"

	"travel-assistant/config"
	"travel-assistant/internal/agent"
	"travel-assistant/internal/model"
	"travel-assistant/pkg/log"
)

// Build creates the full registry: prompt providers for general and schedule,
// remote providers for every configured upstream, Unavailable for the rest.
func Build(ctx context.Context, llm Generator, capabilities map[string]config.CapabilityConfig, l log.Logger) (*agent.Registry, error) {
	list := []agent.Provider{
		NewGeneral(llm, l),
		NewSchedule(llm, l),
	}

	for _, name := range config.RemoteCapabilities {
		id := model.CapabilityID(name)
		cfg, ok := capabilities[name]
		if !ok || cfg.Endpoint == "" {
			l.Warnf(ctx, "%s: %s has no endpoint, registering as unavailable", LogPrefixBuild, id)
			list = append(list, NewUnavailable(id))
			continue
		}

		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultRemoteTimeout
		}
		list = append(list, NewRemote(RemoteConfig{
			Capability: id,
			Endpoint:   cfg.Endpoint,
			APIKey:     cfg.APIKey,
			HTTPClient: &http.Client{Timeout: timeout},
		}, l))
		l.Infof(ctx, "%s: %s -> %s", LogPrefixBuild, id, cfg.Endpoint)
	}

	return agent.NewRegistry(list...)
}

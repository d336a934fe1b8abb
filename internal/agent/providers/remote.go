package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/model"
	"travel-assistant/pkg/log"
)

// RemoteProvider forwards a capability to an upstream HTTP service.
type RemoteProvider struct {
	capability model.CapabilityID
	endpoint   string
	apiKey     string
	httpClient *http.Client
	l          log.Logger
}

var _ agent.Provider = (*RemoteProvider)(nil)

// RemoteConfig configures a RemoteProvider.
type RemoteConfig struct {
	Capability model.CapabilityID
	Endpoint   string
	APIKey     string
	HTTPClient *http.Client
}

type remoteRequest struct {
	Capability string       `json:"capability"`
	Query      string       `json:"query"`
	History    []model.Turn `json:"history"`
}

type remoteResponse struct {
	Text string `json:"text"`
}

// NewRemote creates a RemoteProvider.
func NewRemote(cfg RemoteConfig, l log.Logger) *RemoteProvider {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: DefaultRemoteTimeout}
	}
	return &RemoteProvider{
		capability: cfg.Capability,
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		httpClient: client,
		l:          l,
	}
}

func (p *RemoteProvider) Capability() model.CapabilityID {
	return p.capability
}

// Invoke posts {capability, query, history} and returns the reply text.
func (p *RemoteProvider) Invoke(ctx context.Context, query string, history []model.Turn) (string, error) {
	if history == nil {
		history = []model.Turn{}
	}
	body, err := json.Marshal(remoteRequest{
		Capability: string(p.capability),
		Query:      query,
		History:    history,
	})
	if err != nil {
		return "", fmt.Errorf("%s: failed to marshal request: %w", LogPrefixRemoteInvoke, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%s: failed to create request: %w", LogPrefixRemoteInvoke, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %s call failed: %w", LogPrefixRemoteInvoke, p.capability, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%s: %s upstream error %d: %s", LogPrefixRemoteInvoke, p.capability, resp.StatusCode, string(raw))
	}

	var out remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%s: failed to decode response: %w", LogPrefixRemoteInvoke, err)
	}

	text := strings.TrimSpace(out.Text)
	if text == "" {
		return "", fmt.Errorf("%s: %s returned empty text", LogPrefixRemoteInvoke, p.capability)
	}
	return text, nil
}

package providers

import (
	"context"
	"fmt"
	"strings"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/model"
	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/log"
)

// Generator is the subset of llmprovider.Manager used by PromptProvider.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// PromptProvider answers a capability with a single language-model call.
type PromptProvider struct {
	capability  model.CapabilityID
	system      string
	temperature float64
	llm         Generator
	l           log.Logger
}

var _ agent.Provider = (*PromptProvider)(nil)

// NewPrompt creates a prompt-backed provider.
func NewPrompt(capability model.CapabilityID, system string, temperature float64, llm Generator, l log.Logger) *PromptProvider {
	return &PromptProvider{
		capability:  capability,
		system:      system,
		temperature: temperature,
		llm:         llm,
		l:           l,
	}
}

// NewGeneral creates the always-available general capability.
func NewGeneral(llm Generator, l log.Logger) *PromptProvider {
	return NewPrompt(model.CapabilityGeneral, PromptGeneral, GeneralTemperature, llm, l)
}

// NewSchedule creates the itinerary-planning capability.
func NewSchedule(llm Generator, l log.Logger) *PromptProvider {
	return NewPrompt(model.CapabilitySchedule, PromptSchedule, ScheduleTemperature, llm, l)
}

func (p *PromptProvider) Capability() model.CapabilityID {
	return p.capability
}

// Invoke sends the prior turns followed by query as the final user message.
func (p *PromptProvider) Invoke(ctx context.Context, query string, history []model.Turn) (string, error) {
	messages := make([]llmprovider.Message, 0, len(history)+1)
	for _, turn := range history {
		role := llmprovider.RoleUser
		if turn.Role == model.RoleAssistant {
			role = llmprovider.RoleAssistant
		}
		messages = append(messages, llmprovider.Message{Role: role, Text: turn.Content})
	}
	messages = append(messages, llmprovider.Message{Role: llmprovider.RoleUser, Text: query})

	resp, err := p.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: p.system,
		Messages:          messages,
		Temperature:       p.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", LogPrefixPromptInvoke, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("%s: %w", LogPrefixPromptInvoke, llmprovider.ErrEmptyResponse)
	}

	p.l.Debugf(ctx, "%s: %s answered by %s", LogPrefixPromptInvoke, p.capability, resp.ProviderName)
	return text, nil
}

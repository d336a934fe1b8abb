package classifier

import (
	"context"
	"fmt"
	"strings"

	"travel-assistant/internal/model"
)

// Classify prompts the model and parses its reply.
func (c *LLMClassifier) Classify(ctx context.Context, query model.Query) ([]model.CapabilityID, error) {
	reply, err := c.llm.Complete(ctx, BuildPrompt(query), c.temperature)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixLLMClassify, err)
	}

	caps, err := ParseReply(reply)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixLLMClassify, err)
	}
	if len(caps) == 0 {
		return nil, fmt.Errorf("%s: %w", LogPrefixLLMClassify, ErrNoCapabilities)
	}

	c.l.Debugf(ctx, "%s: selected %v", LogPrefixLLMClassify, caps)
	return caps, nil
}

// BuildPrompt renders PromptClassify with the recent history.
func BuildPrompt(query model.Query) string {
	var history strings.Builder
	recent := model.LastTurns(query.History, HistoryWindow)
	if len(recent) > 0 {
		history.WriteString(PromptHistoryPrefix)
		for _, turn := range recent {
			fmt.Fprintf(&history, "%s: %s\n", turn.Role, turn.Content)
		}
		history.WriteString("\n")
	}
	return fmt.Sprintf(PromptClassify, history.String(), query.Text)
}

package classifier

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"travel-assistant/internal/model"
)

// Classify never fails: any primary error or empty result degrades to the fallback,
// and an empty fallback result becomes {general}.
func (c *Chain) Classify(ctx context.Context, query model.Query) ([]model.CapabilityID, error) {
	ctx, span := c.tracer.Start(ctx, "classifier.classify")
	defer span.End()

	if c.primary != nil {
		caps, err := c.primary.Classify(ctx, query)
		switch {
		case err == nil && len(caps) > 0:
			span.SetAttributes(attribute.String("classifier.path", "primary"))
			return caps, nil
		case errors.Is(err, ErrUnparseableReply):
			c.l.Warnf(ctx, "%s: %s: %v", LogPrefixChainClassify, ErrMsgUnparseable, err)
		case err != nil:
			c.l.Warnf(ctx, "%s: %s: %v", LogPrefixChainClassify, ErrMsgLLMCallFailed, err)
		default:
			c.l.Warnf(ctx, "%s: %s", LogPrefixChainClassify, ErrMsgNoCapabilities)
		}
	}

	span.SetAttributes(attribute.String("classifier.path", "fallback"))

	var caps []model.CapabilityID
	if c.fallback != nil {
		var err error
		caps, err = c.fallback.Classify(ctx, query)
		if err != nil {
			c.l.Warnf(ctx, "%s: fallback failed: %v", LogPrefixChainClassify, err)
		}
	}
	if len(caps) == 0 {
		caps = []model.CapabilityID{model.CapabilityGeneral}
	}
	return caps, nil
}

package classifier

import (
	"context"

	"travel-assistant/internal/model"
)

// Classifier maps a query and its prior turns to the capabilities that should answer it.
type Classifier interface {
	Classify(ctx context.Context, query model.Query) ([]model.CapabilityID, error)
}

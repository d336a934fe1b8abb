package router

import "travel-assistant/internal/model"

// Route turns a classified capability set into an execution plan.
// Duplicates collapse to their first occurrence, unknown identifiers are dropped,
// and general is removed whenever any other capability is present.
func Route(caps []model.CapabilityID) model.Plan {
	seen := make(map[model.CapabilityID]bool, len(caps))
	plan := make(model.Plan, 0, len(caps))
	hasSpecific := false

	for _, id := range caps {
		if !id.Valid() || seen[id] {
			continue
		}
		seen[id] = true
		plan = append(plan, id)
		if id != model.CapabilityGeneral {
			hasSpecific = true
		}
	}

	if !hasSpecific {
		return plan
	}

	out := plan[:0]
	for _, id := range plan {
		if id != model.CapabilityGeneral {
			out = append(out, id)
		}
	}
	return out
}

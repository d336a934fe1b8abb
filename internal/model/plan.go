package model

// Plan is the deduplicated list of capabilities selected for one query.
// An empty Plan sends the query straight to synthesis with no results.
type Plan []CapabilityID

// Empty reports whether the plan has no entries.
func (p Plan) Empty() bool {
	return len(p) == 0
}

// Contains reports whether id is planned.
func (p Plan) Contains(id CapabilityID) bool {
	for _, c := range p {
		if c == id {
			return true
		}
	}
	return false
}

// Strings returns the plan as plain names, for logging and span attributes.
func (p Plan) Strings() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = string(c)
	}
	return out
}

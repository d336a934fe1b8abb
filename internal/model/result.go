package model

import "sort"

// ResultSet maps each capability to the text it produced for one query.
// A capability has at most one entry; Set overwrites.
type ResultSet map[CapabilityID]string

// NewResultSet returns an empty ResultSet.
func NewResultSet() ResultSet {
	return make(ResultSet)
}

// Set records the partial result for id.
func (r ResultSet) Set(id CapabilityID, text string) {
	r[id] = text
}

// Merge returns the union of r and other. Neither input is modified.
// For keys present in both, other wins; the dispatcher never produces such overlaps.
func (r ResultSet) Merge(other ResultSet) ResultSet {
	out := make(ResultSet, len(r)+len(other))
	for k, v := range r {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Len returns the number of entries.
func (r ResultSet) Len() int {
	return len(r)
}

// Keys returns the present capabilities in presentation order.
func (r ResultSet) Keys() []CapabilityID {
	keys := make([]CapabilityID, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		ri, rj := keys[i].rank(), keys[j].rank()
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Only returns the single entry when r has exactly one.
func (r ResultSet) Only() (CapabilityID, string, bool) {
	if len(r) != 1 {
		return "", "", false
	}
	for k, v := range r {
		return k, v, true
	}
	return "", "", false
}

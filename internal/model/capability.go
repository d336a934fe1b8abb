package model

import "strings"

// CapabilityID identifies one information-producing capability.
type CapabilityID string

const (
	CapabilityWeather  CapabilityID = "weather"
	CapabilityHighway  CapabilityID = "highway"
	CapabilityRoute    CapabilityID = "route"
	CapabilityParking  CapabilityID = "parking"
	CapabilityNearby   CapabilityID = "nearby"
	CapabilitySchedule CapabilityID = "schedule"
	CapabilityGeneral  CapabilityID = "general"
)

// toolSuffix is accepted on capability names produced by a language model.
const toolSuffix = "_tool"

// PresentationOrder is the fixed order used when results are rendered without a model.
var PresentationOrder = []CapabilityID{
	CapabilityRoute,
	CapabilityWeather,
	CapabilityHighway,
	CapabilityParking,
	CapabilityNearby,
	CapabilityGeneral,
	CapabilitySchedule,
}

var capabilityLabels = map[CapabilityID]string{
	CapabilityWeather:  "天氣資訊",
	CapabilityHighway:  "高速公路路況",
	CapabilityRoute:    "路線規劃",
	CapabilityParking:  "停車場資訊",
	CapabilityNearby:   "附近地點資訊",
	CapabilitySchedule: "行程規劃",
	CapabilityGeneral:  "旅遊建議",
}

// AllCapabilities returns every capability in presentation order.
func AllCapabilities() []CapabilityID {
	out := make([]CapabilityID, len(PresentationOrder))
	copy(out, PresentationOrder)
	return out
}

// ParseCapability maps a name such as "weather" or "weather_tool" to its CapabilityID.
func ParseCapability(name string) (CapabilityID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimSuffix(name, toolSuffix)
	id := CapabilityID(name)
	if !id.Valid() {
		return "", false
	}
	return id, true
}

// Valid reports whether c is one of the seven known capabilities.
func (c CapabilityID) Valid() bool {
	_, ok := capabilityLabels[c]
	return ok
}

// Label is the user-facing zh-TW name.
func (c CapabilityID) Label() string {
	if label, ok := capabilityLabels[c]; ok {
		return label
	}
	return string(c)
}

// ToolName is the name exposed to the classifier model.
func (c CapabilityID) ToolName() string {
	return string(c) + toolSuffix
}

func (c CapabilityID) String() string {
	return string(c)
}

// rank returns the position of c in PresentationOrder.
func (c CapabilityID) rank() int {
	for i, id := range PresentationOrder {
		if id == c {
			return i
		}
	}
	return len(PresentationOrder)
}

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"travel-assistant/internal/model"
)

func TestParseCapability(t *testing.T) {
	tests := []struct {
		in     string
		want   model.CapabilityID
		wantOK bool
	}{
		{"weather", model.CapabilityWeather, true},
		{"weather_tool", model.CapabilityWeather, true},
		{" Highway_Tool ", model.CapabilityHighway, true},
		{"general", model.CapabilityGeneral, true},
		{"teleport", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := model.ParseCapability(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllCapabilities(t *testing.T) {
	all := model.AllCapabilities()
	assert.Len(t, all, 7)
	for _, id := range all {
		assert.True(t, id.Valid())
		assert.NotEmpty(t, id.Label())
	}

	all[0] = "mutated"
	assert.Equal(t, model.CapabilityRoute, model.PresentationOrder[0])
}

func TestResultSet_MergeIsOrderIndependent(t *testing.T) {
	parts := []model.ResultSet{
		{model.CapabilityWeather: "晴"},
		{model.CapabilityRoute: "走國道一號"},
		{model.CapabilityParking: "有空位"},
	}

	forward := model.NewResultSet()
	for _, p := range parts {
		forward = forward.Merge(p)
	}
	backward := model.NewResultSet()
	for i := len(parts) - 1; i >= 0; i-- {
		backward = backward.Merge(parts[i])
	}

	assert.Equal(t, forward, backward)
	assert.Equal(t, 3, forward.Len())
}

func TestResultSet_SetOverwrites(t *testing.T) {
	rs := model.NewResultSet()
	rs.Set(model.CapabilityWeather, "a")
	rs.Set(model.CapabilityWeather, "b")

	id, text, ok := rs.Only()
	assert.True(t, ok)
	assert.Equal(t, model.CapabilityWeather, id)
	assert.Equal(t, "b", text)
}

func TestResultSet_KeysInPresentationOrder(t *testing.T) {
	rs := model.ResultSet{
		model.CapabilitySchedule: "s",
		model.CapabilityWeather:  "w",
		model.CapabilityGeneral:  "g",
		model.CapabilityRoute:    "r",
	}
	assert.Equal(t, []model.CapabilityID{
		model.CapabilityRoute,
		model.CapabilityWeather,
		model.CapabilityGeneral,
		model.CapabilitySchedule,
	}, rs.Keys())
}

func TestLastTurns(t *testing.T) {
	turns := []model.Turn{
		{Role: model.RoleUser, Content: "1"},
		{Role: model.RoleAssistant, Content: "2"},
		{Role: model.RoleUser, Content: "3"},
	}
	assert.Equal(t, turns[1:], model.LastTurns(turns, 2))
	assert.Equal(t, turns, model.LastTurns(turns, 0))
	assert.Equal(t, turns, model.LastTurns(turns, 10))

	clone := model.CloneTurns(turns)
	clone[0].Content = "changed"
	assert.Equal(t, "1", turns[0].Content)
	assert.NotNil(t, model.CloneTurns(nil))
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "RECEIVED", model.StageReceived.String())
	assert.Equal(t, "DONE", model.StageDone.String())
	assert.Equal(t, "UNKNOWN", model.Stage(42).String())
}

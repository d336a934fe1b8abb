package providers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/config"
	"travel-assistant/internal/agent"
	"travel-assistant/internal/agent/providers"
	"travel-assistant/internal/model"
	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/log"
)

type fakeGenerator struct {
	text    string
	err     error
	lastReq *llmprovider.Request
}

func (f *fakeGenerator) GenerateContent(_ context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Text: f.text, ProviderName: "fake"}, nil
}

func TestPromptProvider(t *testing.T) {
	history := []model.Turn{
		{Role: model.RoleUser, Content: "我想去花蓮"},
		{Role: model.RoleAssistant, Content: "花蓮很美"},
	}

	t.Run("general builds conversation", func(t *testing.T) {
		gen := &fakeGenerator{text: "  太魯閣值得一去  "}
		p := providers.NewGeneral(gen, log.NewNop())

		got, err := p.Invoke(context.Background(), "有什麼推薦?", history)
		require.NoError(t, err)
		assert.Equal(t, "太魯閣值得一去", got)
		assert.Equal(t, model.CapabilityGeneral, p.Capability())

		req := gen.lastReq
		assert.Equal(t, providers.PromptGeneral, req.SystemInstruction)
		assert.Equal(t, providers.GeneralTemperature, req.Temperature)
		require.Len(t, req.Messages, 3)
		assert.Equal(t, llmprovider.RoleAssistant, req.Messages[1].Role)
		assert.Equal(t, "有什麼推薦?", req.Messages[2].Text)
	})

	t.Run("schedule temperature", func(t *testing.T) {
		gen := &fakeGenerator{text: "Day 1: ..."}
		p := providers.NewSchedule(gen, log.NewNop())

		_, err := p.Invoke(context.Background(), "花蓮兩天一夜", nil)
		require.NoError(t, err)
		assert.Equal(t, providers.ScheduleTemperature, gen.lastReq.Temperature)
		assert.Equal(t, model.CapabilitySchedule, p.Capability())
	})

	t.Run("model failure", func(t *testing.T) {
		p := providers.NewGeneral(&fakeGenerator{err: llmprovider.ErrAllProvidersFailed}, log.NewNop())
		_, err := p.Invoke(context.Background(), "q", nil)
		assert.True(t, errors.Is(err, llmprovider.ErrAllProvidersFailed))
	})

	t.Run("blank reply", func(t *testing.T) {
		p := providers.NewGeneral(&fakeGenerator{text: "\n"}, log.NewNop())
		_, err := p.Invoke(context.Background(), "q", nil)
		assert.True(t, errors.Is(err, llmprovider.ErrEmptyResponse))
	})
}

func TestRemoteProvider(t *testing.T) {
	var got struct {
		Capability string       `json:"capability"`
		Query      string       `json:"query"`
		History    []model.Turn `json:"history"`
	}
	var auth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		switch got.Query {
		case "fail":
			w.WriteHeader(http.StatusBadGateway)
		case "empty":
			_, _ = w.Write([]byte(`{"text": "  "}`))
		case "garbage":
			_, _ = w.Write([]byte(`not json`))
		case "slow":
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(`{"text": "late"}`))
		default:
			_, _ = w.Write([]byte(`{"text": "台北市今日晴，氣溫 28 度"}`))
		}
	}))
	defer ts.Close()

	p := providers.NewRemote(providers.RemoteConfig{
		Capability: model.CapabilityWeather,
		Endpoint:   ts.URL,
		APIKey:     "cwa-key",
	}, log.NewNop())

	t.Run("success", func(t *testing.T) {
		text, err := p.Invoke(context.Background(), "台北天氣", []model.Turn{{Role: model.RoleUser, Content: "hi"}})
		require.NoError(t, err)
		assert.Equal(t, "台北市今日晴，氣溫 28 度", text)
		assert.Equal(t, "weather", got.Capability)
		assert.Equal(t, "台北天氣", got.Query)
		assert.Len(t, got.History, 1)
		assert.Equal(t, "Bearer cwa-key", auth)
	})

	for _, q := range []string{"fail", "empty", "garbage"} {
		t.Run(q, func(t *testing.T) {
			_, err := p.Invoke(context.Background(), q, nil)
			require.Error(t, err)
		})
	}

	t.Run("context deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := p.Invoke(ctx, "slow", nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})
}

func TestUnavailable(t *testing.T) {
	u := providers.NewUnavailable(model.CapabilityParking)
	assert.Equal(t, model.CapabilityParking, u.Capability())

	_, err := u.Invoke(context.Background(), "停車場", nil)
	assert.True(t, errors.Is(err, agent.ErrCapabilityUnavailable))
}

func TestBuild(t *testing.T) {
	caps := map[string]config.CapabilityConfig{
		"weather": {Endpoint: "http://weather.local/invoke", Timeout: time.Second},
	}

	registry, err := providers.Build(context.Background(), &fakeGenerator{text: "ok"}, caps, log.NewNop())
	require.NoError(t, err)

	weather, ok := registry.Get(model.CapabilityWeather)
	require.True(t, ok)
	assert.IsType(t, &providers.RemoteProvider{}, weather)

	parking, ok := registry.Get(model.CapabilityParking)
	require.True(t, ok)
	assert.IsType(t, &providers.Unavailable{}, parking)

	general, ok := registry.Get(model.CapabilityGeneral)
	require.True(t, ok)
	assert.IsType(t, &providers.PromptProvider{}, general)

	assert.Len(t, registry.List(), len(model.PresentationOrder))
}

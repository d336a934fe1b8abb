package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/pkg/gemini"
)

func TestConfig_Validate(t *testing.T) {
	cfg := gemini.Config{}
	require.Error(t, cfg.Validate())

	cfg = gemini.Config{APIKey: "k"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, gemini.DefaultModel, cfg.Model)
	assert.Equal(t, gemini.DefaultAPIURL, cfg.APIURL)
	assert.NotNil(t, cfg.HTTPClient)
}

func TestGenerateContent(t *testing.T) {
	var captured map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/models/gemini-test:generateContent" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		captured = map[string]any{}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		contents := captured["contents"].([]any)
		first := contents[0].(map[string]any)["parts"].([]any)[0].(map[string]any)["text"]
		if first == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "hello "}, {"text": "traveler"}]}, "finishReason": "STOP"}],
			"usageMetadata": {"promptTokenCount": 3, "candidatesTokenCount": 2, "totalTokenCount": 5}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "gemini-test", APIURL: ts.URL})
	require.NoError(t, err)
	assert.Equal(t, "gemini-test", client.Model())

	t.Run("success", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: "be brief",
			Messages: []gemini.Content{
				{Role: gemini.RoleUser, Text: "hi"},
				{Role: gemini.RoleAssistant, Text: "hello"},
				{Role: gemini.RoleUser, Text: "weather?"},
			},
			Temperature: 0.2,
		})
		require.NoError(t, err)
		assert.Equal(t, "hello traveler", resp.Text)
		assert.Equal(t, "STOP", resp.FinishReason)
		assert.Equal(t, 5, resp.Usage.TotalTokens)

		contents := captured["contents"].([]any)
		require.Len(t, contents, 3)
		assert.Equal(t, "model", contents[1].(map[string]any)["role"])
		assert.NotNil(t, captured["system_instruction"])
		assert.NotNil(t, captured["generationConfig"])
	})

	t.Run("server error", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: gemini.RoleUser, Text: "cause_500"}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})
}

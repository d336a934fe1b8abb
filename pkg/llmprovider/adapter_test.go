package llmprovider_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/pkg/gemini"
	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/openai"
)

func TestOpenAIAdapter_MapsRoles(t *testing.T) {
	var got struct {
		Messages []openai.Message `json:"messages"`
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"model":"gpt-test","choices":[{"message":{"role":"assistant","content":"ok"}}],"usage":{"total_tokens":3}}`))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "k", Model: "gpt-test", BaseURL: ts.URL})
	require.NoError(t, err)
	adapter := llmprovider.NewOpenAIAdapter("deepseek", client)

	resp, err := adapter.GenerateContent(context.Background(), &llmprovider.Request{
		SystemInstruction: "sys",
		Messages: []llmprovider.Message{
			{Role: llmprovider.RoleUser, Text: "q1"},
			{Role: llmprovider.RoleAssistant, Text: "a1"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, "deepseek", resp.ProviderName)
	assert.Equal(t, 3, resp.Usage.TotalTokens)
	require.Len(t, got.Messages, 3)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "assistant", got.Messages[2].Role)
}

func TestGeminiAdapter_MapsRoles(t *testing.T) {
	var roles []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Contents []struct {
				Role string `json:"role"`
			} `json:"contents"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		for _, c := range body.Contents {
			roles = append(roles, c.Role)
		}
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"晴"}]}}]}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "k", APIURL: ts.URL})
	require.NoError(t, err)
	adapter := llmprovider.NewGeminiAdapter(client)

	resp, err := adapter.GenerateContent(context.Background(), &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: llmprovider.RoleUser, Text: "q1"},
			{Role: llmprovider.RoleAssistant, Text: "a1"},
			{Role: llmprovider.RoleUser, Text: "q2"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "晴", resp.Text)
	assert.Equal(t, "gemini", adapter.Name())
	assert.Equal(t, []string{"user", "model", "user"}, roles)
}

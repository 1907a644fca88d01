package openai_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MyCircle/moderation/pkg/infra/providers"
	"github.com/MyCircle/moderation/pkg/infra/providers/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenaiClient(t *testing.T) {
	client := openai.NewOpenaiClient()
	assert.NotNil(t, client, "NewOpenaiClient should return a non-nil client")
}

func TestAsk_MissingAPIKey(t *testing.T) {
	client := openai.NewOpenaiClient()

	config := &providers.Config{
		Model: "gpt-4o-mini",
		Credentials: providers.Credentials{
			ApiKey: "",
		},
	}

	resp, err := client.Ask(context.Background(), config, "test prompt")

	assert.Error(t, err, "Ask should return an error when API key is missing")
	assert.Nil(t, resp, "Ask should return nil response when API key is missing")
	assert.Contains(t, err.Error(), "API key is required")
}

func TestAsk_MissingModel(t *testing.T) {
	client := openai.NewOpenaiClient()

	config := &providers.Config{
		Credentials: providers.Credentials{
			ApiKey: "test-api-key",
		},
	}

	resp, err := client.Ask(context.Background(), config, "test prompt",
		providers.Attachment{Data: []byte{0x89}, MIMEType: "image/png"})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "model is required")
}

type sentMessage struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

type sentPart struct {
	Type     string `json:"type"`
	Text     string `json:"text"`
	ImageURL struct {
		URL string `json:"url"`
	} `json:"image_url"`
}

func TestAsk_SendsDataURLImageWithJSONFormat(t *testing.T) {
	image := []byte("\xff\xd8\xff\xe0fake-jpeg")
	var (
		path string
		auth string
		body []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o-mini",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"message": {"role": "assistant", "content": "{\"safe\": true, \"reason\": \"\"}"}
			}],
			"usage": {"prompt_tokens": 30, "completion_tokens": 9, "total_tokens": 39}
		}`)
	}))
	defer server.Close()

	client := openai.NewOpenaiClient(openai.WithBaseURL(server.URL + "/"))
	resp, err := client.Ask(context.Background(), &providers.Config{
		Credentials:  providers.Credentials{ApiKey: "test-key"},
		Model:        "gpt-4o-mini",
		SystemPrompt: "You are an image moderator.",
		Instructions: []string{"reply with a verdict"},
		Temperature:  0.1,
		JSONOutput:   true,
	}, "Classify the attached image.", providers.Attachment{Data: image, MIMEType: "image/jpeg"})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(path, "/chat/completions"), path)
	assert.Equal(t, "Bearer test-key", auth)

	var sent struct {
		Model          string        `json:"model"`
		Temperature    float64       `json:"temperature"`
		Messages       []sentMessage `json:"messages"`
		ResponseFormat struct {
			Type string `json:"type"`
		} `json:"response_format"`
	}
	require.NoError(t, json.Unmarshal(body, &sent))

	assert.Equal(t, "gpt-4o-mini", sent.Model)
	assert.InDelta(t, 0.1, sent.Temperature, 1e-9)
	assert.Equal(t, "json_object", sent.ResponseFormat.Type)

	require.Len(t, sent.Messages, 2)
	assert.Equal(t, "system", sent.Messages[0].Role)
	var system string
	require.NoError(t, json.Unmarshal(sent.Messages[0].Content, &system))
	assert.Equal(t, "You are an image moderator.\n\n[Instructions]\n- reply with a verdict", system)

	assert.Equal(t, "user", sent.Messages[1].Role)
	var parts []sentPart
	require.NoError(t, json.Unmarshal(sent.Messages[1].Content, &parts))
	require.Len(t, parts, 2)
	assert.Equal(t, "text", parts[0].Type)
	assert.Equal(t, "Classify the attached image.", parts[0].Text)
	assert.Equal(t, "image_url", parts[1].Type)
	assert.Equal(t, "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString(image), parts[1].ImageURL.URL)

	assert.Equal(t, `{"safe": true, "reason": ""}`, resp.Response)
	assert.Equal(t, "chatcmpl-1", resp.ID)
	assert.Equal(t, openai.ProviderName, resp.Provider)
	assert.Equal(t, providers.NewUsage(30, 9), resp.Usage)
}

func TestAsk_TextOnlyWithoutJSONFormat(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "chatcmpl-2",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "hi"}}],
			"usage": {"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2}
		}`)
	}))
	defer server.Close()

	client := openai.NewOpenaiClient(openai.WithBaseURL(server.URL + "/"))
	resp, err := client.Ask(context.Background(), &providers.Config{
		Credentials: providers.Credentials{ApiKey: "test-key"},
		Model:       "gpt-4o-mini",
	}, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hi", resp.Response)

	var sent map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &sent))
	_, hasFormat := sent["response_format"]
	assert.False(t, hasFormat)
	var messages []sentMessage
	require.NoError(t, json.Unmarshal(sent["messages"], &messages))
	require.Len(t, messages, 1)
	assert.Equal(t, "user", messages[0].Role)
}

package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/johnquangdev/one-on-one-manager/pkg/config"
)

type recordingModel struct {
	messages []llms.MessageContent
	reply    *llms.ContentResponse
	err      error
}

func (m *recordingModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	m.messages = messages
	return m.reply, m.err
}

func TestNewProviders_NoKeys(t *testing.T) {
	providers, err := NewProviders(config.AIConfig{})
	require.NoError(t, err)
	assert.Nil(t, providers.OpenAI)
	assert.Nil(t, providers.Anthropic)
	assert.Empty(t, providers.Text())
	assert.Empty(t, providers.Vision())
}

func TestProviders_Order(t *testing.T) {
	providers, err := NewProviders(config.AIConfig{
		OpenAIKey:      "sk-test",
		OpenAIModel:    "gpt-4o",
		AnthropicKey:   "sk-ant-test",
		AnthropicModel: "claude-3-5-sonnet-20241022",
	})
	require.NoError(t, err)

	text := providers.Text()
	require.Len(t, text, 2)
	assert.Equal(t, ProviderOpenAI, text[0].Name())

	vision := providers.Vision()
	require.Len(t, vision, 2)
	assert.Equal(t, ProviderAnthropic, vision[0].Name())
}

func TestProvider_ChatReturnsFirstChoice(t *testing.T) {
	model := &recordingModel{reply: &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: `{"ok":true}`}}}}
	p := NewProvider("fake", model, false)

	out, err := p.Chat(context.Background(), "be terse", "hello", 100)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out)

	require.Len(t, model.messages, 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, model.messages[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, model.messages[1].Role)
}

func TestProvider_NoChoices(t *testing.T) {
	p := NewProvider("fake", &recordingModel{reply: &llms.ContentResponse{}}, false)
	_, err := p.Chat(context.Background(), "s", "u", 10)
	assert.ErrorIs(t, err, ErrNoChoices)

	boom := errors.New("boom")
	p = NewProvider("fake", &recordingModel{err: boom}, false)
	_, err = p.Chat(context.Background(), "s", "u", 10)
	assert.ErrorIs(t, err, boom)
}

func TestProvider_ImageEncoding(t *testing.T) {
	reply := &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: "{}"}}}
	image := []byte{0x89, 'P', 'N', 'G'}

	inline := &recordingModel{reply: reply}
	_, err := NewProvider("inline", inline, true).ChatWithImage(context.Background(), "read", image, "image/png", 10)
	require.NoError(t, err)
	require.Len(t, inline.messages, 1)
	binary, ok := inline.messages[0].Parts[0].(llms.BinaryContent)
	require.True(t, ok)
	assert.Equal(t, image, binary.Data)

	byURL := &recordingModel{reply: reply}
	_, err = NewProvider("url", byURL, false).ChatWithImage(context.Background(), "read", image, "image/png", 10)
	require.NoError(t, err)
	url, ok := byURL.messages[0].Parts[0].(llms.ImageURLContent)
	require.True(t, ok)
	assert.Equal(t, "data:image/png;base64,iVBORw==", url.URL)
}

func TestOpenAIProvider_AgainstStubServer(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   "gpt-4o",
			"choices": []map[string]interface{}{{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": `{"sentiment":"neutral"}`},
				"finish_reason": "stop",
			}},
		})
	}))
	defer ts.Close()

	providers, err := NewProviders(config.AIConfig{OpenAIKey: "sk-test", OpenAIModel: "gpt-4o", OpenAIBaseURL: ts.URL})
	require.NoError(t, err)
	require.NotNil(t, providers.OpenAI)

	out, err := providers.OpenAI.Chat(context.Background(), "system", "notes", 100)
	require.NoError(t, err)
	assert.Equal(t, `{"sentiment":"neutral"}`, out)
}

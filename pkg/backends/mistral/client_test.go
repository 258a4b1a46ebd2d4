package mistral

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mock "mercator-hq/themis/internal/backends"
	"mercator-hq/themis/pkg/backends"
)

func testConfig(baseURL string) backends.Config {
	return backends.Config{
		Name:        "mistral",
		Model:       "mistral-small-latest",
		BaseURL:     baseURL,
		APIKey:      "test-key",
		Timeout:     5 * time.Second,
		Temperature: 0.2,
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	cfg := testConfig("")
	cfg.APIKey = ""

	_, err := New(cfg)

	var cfgErr *backends.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "mistral", cfgErr.Backend)
}

func TestInvoke_StringContent(t *testing.T) {
	ms := mock.NewMockServer()
	defer ms.Close()

	verdict := mock.VerdictJSON("fail", "No direct evidence found.", "No match.", 30)
	ms.SetResponse("/chat/completions", mock.MockResponse{
		Body: mock.ChatCompletionBody(verdict),
	})

	client, err := New(testConfig(ms.URL()))
	require.NoError(t, err)
	defer client.Close()

	text, err := client.Invoke(context.Background(), "evaluate this rule")

	require.NoError(t, err)
	assert.Equal(t, verdict, text)
}

func TestInvoke_ChunkedContent(t *testing.T) {
	ms := mock.NewMockServer()
	defer ms.Close()

	ms.SetResponse("/chat/completions", mock.MockResponse{
		Body: mock.ChunkedChatCompletionBody(`{"status":"pass",`, `"confidence":80}`),
	})

	client, err := New(testConfig(ms.URL()))
	require.NoError(t, err)
	defer client.Close()

	text, err := client.Invoke(context.Background(), "evaluate this rule")

	require.NoError(t, err)
	assert.Equal(t, `{"status":"pass","confidence":80}`, text)
}

func TestInvoke_EmptyChoicesIsEmptyResponse(t *testing.T) {
	ms := mock.NewMockServer()
	defer ms.Close()

	ms.SetResponse("/chat/completions", mock.MockResponse{
		RawBody: `{"id":"chatcmpl-test","choices":[]}`,
	})

	client, err := New(testConfig(ms.URL()))
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Invoke(context.Background(), "evaluate this rule")

	var emptyErr *backends.EmptyResponseError
	assert.ErrorAs(t, err, &emptyErr)
}

func TestInvoke_UnknownContentShapeIsParseError(t *testing.T) {
	ms := mock.NewMockServer()
	defer ms.Close()

	// Content is neither a string nor a chunk array.
	ms.SetResponse("/chat/completions", mock.MockResponse{
		RawBody: `{"choices":[{"message":{"content":{"nested":"object"}}}]}`,
	})

	client, err := New(testConfig(ms.URL()))
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Invoke(context.Background(), "evaluate this rule")

	var parseErr *backends.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestInvoke_UnauthorizedIsAuthError(t *testing.T) {
	ms := mock.NewMockServer()
	defer ms.Close()

	ms.SetResponse("/chat/completions", mock.MockResponse{
		StatusCode: 403,
		RawBody:    `{"message":"forbidden"}`,
	})

	client, err := New(testConfig(ms.URL()))
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Invoke(context.Background(), "evaluate this rule")

	var authErr *backends.AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestUnwrapContent(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain string", raw: `"hello"`, want: "hello"},
		{name: "single chunk", raw: `[{"type":"text","text":"hello"}]`, want: "hello"},
		{name: "multiple chunks concatenated", raw: `[{"type":"text","text":"a"},{"type":"text","text":"b"}]`, want: "ab"},
		{name: "untyped chunks included", raw: `[{"text":"a"}]`, want: "a"},
		{name: "non-text chunks skipped", raw: `[{"type":"image_url","text":"x"},{"type":"text","text":"b"}]`, want: "b"},
		{name: "empty raw", raw: ``, want: ""},
		{name: "object shape", raw: `{"text":"a"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := unwrapContent(json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

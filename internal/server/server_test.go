package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/translatekit/deepl-mcp/internal/config"
	"github.com/translatekit/deepl-mcp/internal/logging"
)

// connect wires a client session to srv over in-memory transports.
func connect(t *testing.T, srv *Server) *mcp.ClientSession {
	t.Helper()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serverSession, err := srv.mcp.Connect(t.Context(), serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(t.Context(), clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })

	return session
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = "127.0.0.1:0"
	}
	srv := New(cfg, logging.ForTest(t))
	t.Cleanup(srv.Close)
	return srv
}

func fakeDeepL(t *testing.T, handler http.HandlerFunc) string {
	t.Helper()
	api := httptest.NewServer(handler)
	t.Cleanup(api.Close)
	return api.URL
}

func TestToolCatalog(t *testing.T) {
	srv := newTestServer(t, &config.Config{APIKey: "k"})
	session := connect(t, srv)

	res, err := session.ListTools(t.Context(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"translate_text",
		"translate_with_glossary",
		"detect_language",
		"list_languages",
		"get_usage",
		"list_glossaries",
		"create_glossary",
		"get_glossary",
		"delete_glossary",
		"translate_document",
		"get_document_status",
		"download_translated_document",
	}, names)
}

func TestSkillResource(t *testing.T) {
	srv := newTestServer(t, &config.Config{APIKey: "k"})
	session := connect(t, srv)

	list, err := session.ListResources(t.Context(), nil)
	require.NoError(t, err)
	require.Len(t, list.Resources, 1)
	assert.Equal(t, skillURI, list.Resources[0].URI)
	assert.Equal(t, "deepl-translation", list.Resources[0].Name)
	assert.NotEmpty(t, list.Resources[0].Description)

	read, err := session.ReadResource(t.Context(), &mcp.ReadResourceParams{URI: skillURI})
	require.NoError(t, err)
	require.Len(t, read.Contents, 1)
	assert.Equal(t, "text/markdown", read.Contents[0].MIMEType)
	assert.Contains(t, read.Contents[0].Text, "translate_text")
}

func TestTranslateText_AcceptsStringAndArray(t *testing.T) {
	url := fakeDeepL(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		translations := make([]map[string]string, len(r.PostForm["text"]))
		for i := range translations {
			translations[i] = map[string]string{"text": "übersetzt", "detected_source_language": "EN"}
		}
		json.NewEncoder(w).Encode(map[string]any{"translations": translations})
	})
	srv := newTestServer(t, &config.Config{APIKey: "k", ServerURL: url})
	session := connect(t, srv)

	// Bare string input.
	res, err := session.CallTool(t.Context(), &mcp.CallToolParams{
		Name:      "translate_text",
		Arguments: map[string]any{"text": "hello", "target_lang": "DE"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var body struct {
		Translations []struct {
			Text string `json:"text"`
		} `json:"translations"`
	}
	raw, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body.Translations, 1)
	assert.Equal(t, "übersetzt", body.Translations[0].Text)

	// Array input keeps one result per segment.
	res, err = session.CallTool(t.Context(), &mcp.CallToolParams{
		Name:      "translate_text",
		Arguments: map[string]any{"text": []string{"one", "two"}, "target_lang": "DE"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	raw, err = json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Len(t, body.Translations, 2)
}

func TestToolError_MissingCredential(t *testing.T) {
	srv := newTestServer(t, &config.Config{})
	session := connect(t, srv)

	res, err := session.CallTool(t.Context(), &mcp.CallToolParams{
		Name:      "get_usage",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	require.True(t, res.IsError)

	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "DEEPL_API_KEY")
}

func TestToolError_VendorFailureIsToolError(t *testing.T) {
	url := fakeDeepL(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"invalid auth key"}`))
	})
	srv := newTestServer(t, &config.Config{APIKey: "bad", ServerURL: url})
	session := connect(t, srv)

	res, err := session.CallTool(t.Context(), &mcp.CallToolParams{
		Name:      "translate_text",
		Arguments: map[string]any{"text": "x", "target_lang": "DE"},
	})
	require.NoError(t, err)
	require.True(t, res.IsError)

	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "403")
}

func TestLazyHandle_SharedAcrossCalls(t *testing.T) {
	srv := newTestServer(t, &config.Config{APIKey: "k"})

	first, err := srv.translator()
	require.NoError(t, err)
	second, err := srv.translator()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLazyHandle_MissingKeyFailsEveryTime(t *testing.T) {
	srv := newTestServer(t, &config.Config{})

	_, err := srv.translator()
	require.Error(t, err)
	_, err = srv.translator()
	require.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, &config.Config{APIKey: "k"})

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	addr := "127.0.0.1:18472"
	done := make(chan error, 1)
	go func() { done <- srv.ServeHTTP(ctx, addr) }()

	var resp *http.Response
	var err error
	for range 50 {
		resp, err = http.Get("http://" + addr + "/health")
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body healthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "deepl-mcp", body.Service)

	cancel()
	require.NoError(t, <-done)
}

package deepl

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("test-key", WithServerURL(srv.URL))
}

func TestNewClient_EndpointSelection(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"free account key", "abc123:fx", freeServerURL},
		{"pro account key", "abc123", proServerURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.key)
			assert.Equal(t, tt.want, c.ServerURL())
		})
	}
}

func TestNewClient_ServerURLOverride(t *testing.T) {
	c := NewClient("abc123:fx", WithServerURL("http://localhost:3000/"))
	assert.Equal(t, "http://localhost:3000", c.ServerURL())
}

func TestTranslateText(t *testing.T) {
	var gotPath, gotAuth string
	var gotForm map[string][]string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"translations":[
			{"detected_source_language":"EN","text":"Hallo"},
			{"detected_source_language":"EN","text":"Welt"}
		]}`))
	})

	res, err := c.TranslateText(t.Context(), []string{"Hello", "World"}, "DE", &TranslateOptions{
		Formality:          "more",
		PreserveFormatting: true,
		SplitSentences:     "nonewlines",
	})
	require.NoError(t, err)

	assert.Equal(t, "/v2/translate", gotPath)
	assert.Equal(t, "DeepL-Auth-Key test-key", gotAuth)
	assert.Equal(t, []string{"Hello", "World"}, gotForm["text"])
	assert.Equal(t, []string{"DE"}, gotForm["target_lang"])
	assert.Equal(t, []string{"more"}, gotForm["formality"])
	assert.Equal(t, []string{"1"}, gotForm["preserve_formatting"])
	assert.Equal(t, []string{"nonewlines"}, gotForm["split_sentences"])

	require.Len(t, res, 2)
	assert.Equal(t, "Hallo", res[0].Text)
	assert.Equal(t, "EN", res[0].DetectedSourceLanguage)
	assert.Equal(t, "Welt", res[1].Text)
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		status int
		want   Kind
	}{
		{http.StatusForbidden, KindAuthorization},
		{http.StatusUnauthorized, KindAuthorization},
		{456, KindQuotaExceeded},
		{http.StatusTooManyRequests, KindTooManyRequests},
		{http.StatusNotFound, KindNotFound},
		{http.StatusBadRequest, KindBadRequest},
		{http.StatusInternalServerError, KindServer},
		{http.StatusServiceUnavailable, KindServer},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"message":"it broke"}`))
			})

			_, err := c.TranslateText(t.Context(), []string{"x"}, "DE", nil)
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.want, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Contains(t, apiErr.Message, "it broke")
		})
	}
}

func TestErrorWithDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"bad target_lang","detail":"use DE not de_DE"}`))
	})

	_, err := c.TranslateText(t.Context(), []string{"x"}, "de_DE", nil)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "bad target_lang, detail: use DE not de_DE", apiErr.Message)
}

func TestNetworkError(t *testing.T) {
	c := NewClient("k", WithServerURL("http://127.0.0.1:1"))

	_, err := c.GetUsage(t.Context())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindNetwork, apiErr.Kind)
	assert.Zero(t, apiErr.StatusCode)
}

func TestGetLanguages(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("type") {
		case "source":
			w.Write([]byte(`[{"language":"EN","name":"English"}]`))
		case "target":
			w.Write([]byte(`[{"language":"DE","name":"German","supports_formality":true}]`))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	})

	src, err := c.GetSourceLanguages(t.Context())
	require.NoError(t, err)
	require.Len(t, src, 1)
	assert.Equal(t, "EN", src[0].Code)
	assert.Nil(t, src[0].SupportsFormality)

	tgt, err := c.GetTargetLanguages(t.Context())
	require.NoError(t, err)
	require.Len(t, tgt, 1)
	require.NotNil(t, tgt[0].SupportsFormality)
	assert.True(t, *tgt[0].SupportsFormality)
}

func TestGetUsage_DocumentOnlyPlan(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"document_count":5,"document_limit":20}`))
	})

	usage, err := c.GetUsage(t.Context())
	require.NoError(t, err)
	assert.Nil(t, usage.CharacterCount)
	assert.Nil(t, usage.CharacterLimit)
	require.NotNil(t, usage.DocumentCount)
	assert.EqualValues(t, 5, *usage.DocumentCount)
}

func TestCreateGlossary_EncodesSortedTSV(t *testing.T) {
	var gotEntries, gotFormat string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotEntries = r.PostForm.Get("entries")
		gotFormat = r.PostForm.Get("entries_format")
		w.Write([]byte(`{
			"glossary_id":"g-1","name":"tech","ready":false,
			"source_lang":"en","target_lang":"de",
			"creation_time":"2024-03-01T10:00:00+02:00","entry_count":2
		}`))
	})

	info, err := c.CreateGlossary(t.Context(), "tech", "en", "de", map[string]string{
		"world": "Welt",
		"hello": "Hallo",
	})
	require.NoError(t, err)

	assert.Equal(t, "hello\tHallo\nworld\tWelt", gotEntries)
	assert.Equal(t, "tsv", gotFormat)
	assert.Equal(t, "g-1", info.GlossaryID)
	assert.False(t, info.Ready)

	// Vendor zone offset survives parsing
	_, offset := info.CreationTime.Zone()
	assert.Equal(t, 2*3600, offset)
}

func TestDeleteGlossary(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteGlossary(t.Context(), "g-1"))
	assert.Equal(t, "DELETE", gotMethod)
	assert.Equal(t, "/v2/glossaries/g-1", gotPath)
}

func TestUploadDocument(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "DE", r.MultipartForm.Value["target_lang"][0])
		assert.Equal(t, "en", r.MultipartForm.Value["source_lang"][0])

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "report.docx", header.Filename)

		w.Write([]byte(`{"document_id":"doc-1","document_key":"key-1"}`))
	})

	handle, err := c.UploadDocument(t.Context(), strings.NewReader("content"), "report.docx", "DE",
		&DocumentUploadOptions{SourceLang: "en"})
	require.NoError(t, err)
	assert.Equal(t, "doc-1", handle.DocumentID)
	assert.Equal(t, "key-1", handle.DocumentKey)
}

func TestGetDocumentStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "key-1", r.PostForm.Get("document_key"))
		w.Write([]byte(`{"document_id":"doc-1","status":"translating","seconds_remaining":42}`))
	})

	status, err := c.GetDocumentStatus(t.Context(), DocumentHandle{DocumentID: "doc-1", DocumentKey: "key-1"})
	require.NoError(t, err)
	assert.False(t, status.Done())
	require.NotNil(t, status.SecondsRemaining)
	assert.EqualValues(t, 42, *status.SecondsRemaining)
}

func TestDownloadDocument(t *testing.T) {
	payload := []byte("translated document bytes")
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/document/doc-1/result", r.URL.Path)
		w.Write(payload)
	})

	var buf bytes.Buffer
	n, err := c.DownloadDocument(t.Context(), DocumentHandle{DocumentID: "doc-1", DocumentKey: "key-1"}, &buf)
	require.NoError(t, err)
	assert.EqualValues(t, len(payload), n)
	assert.Equal(t, payload, buf.Bytes())
}

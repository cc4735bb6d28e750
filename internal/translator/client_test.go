package translator

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/translatekit/deepl-mcp/internal/deepl"
	"github.com/translatekit/deepl-mcp/internal/errors"
)

func newTestTranslator(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewFromKey("test-key", deepl.WithServerURL(srv.URL))
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestNewFromKey_MissingKey(t *testing.T) {
	_, err := NewFromKey("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMissingAPIKey)
}

func TestTranslateText_ShapeAndOrder(t *testing.T) {
	c := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"translations":[
			{"detected_source_language":"EN","text":"eins"},
			{"detected_source_language":"EN","text":"zwei"},
			{"detected_source_language":"EN","text":"drei"}
		]}`))
	})

	res, err := c.TranslateText(t.Context(), []string{"one", "two", "three"}, "DE", TranslateTextOptions{})
	require.NoError(t, err)

	// One translation per input, in input order, even for multi-segment calls.
	require.Len(t, res.Translations, 3)
	assert.Equal(t, "eins", res.Translations[0].Text)
	assert.Equal(t, "zwei", res.Translations[1].Text)
	assert.Equal(t, "drei", res.Translations[2].Text)
	require.NotNil(t, res.Translations[0].DetectedSourceLanguage)
	assert.Equal(t, "EN", *res.Translations[0].DetectedSourceLanguage)
}

func TestTranslateText_SingleTextStillAList(t *testing.T) {
	c := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"translations":[{"text":"Hallo"}]}`))
	})

	res, err := c.TranslateText(t.Context(), []string{"Hello"}, "DE", TranslateTextOptions{})
	require.NoError(t, err)
	require.Len(t, res.Translations, 1)
	assert.Equal(t, "Hallo", res.Translations[0].Text)
	assert.Nil(t, res.Translations[0].DetectedSourceLanguage)
}

func TestTranslateText_ErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		httpStatus int
		want       int
	}{
		{"authorization", http.StatusForbidden, StatusForbidden},
		{"quota exceeded", 456, StatusQuotaExceeded},
		{"rate limited", http.StatusTooManyRequests, StatusTooManyRequests},
		{"bad request collapses", http.StatusBadRequest, StatusInternal},
		{"server error", http.StatusInternalServerError, StatusInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.httpStatus)
				w.Write([]byte(`{"message":"nope"}`))
			})

			_, err := c.TranslateText(t.Context(), []string{"x"}, "DE", TranslateTextOptions{})
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.want, apiErr.Status)
			assert.Contains(t, apiErr.Error(), "DeepL API error")
		})
	}
}

func TestTranslateWithGlossary_FineGrainedCodes(t *testing.T) {
	tests := []struct {
		name       string
		httpStatus int
		want       int
	}{
		{"authorization", http.StatusForbidden, StatusForbidden},
		{"quota exceeded", 456, StatusQuotaExceeded},
		{"rate limited", http.StatusTooManyRequests, StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.httpStatus)
				w.Write([]byte(`{"message":"nope"}`))
			})

			_, err := c.TranslateWithGlossary(t.Context(), []string{"x"}, "DE", "g-1", GlossaryTranslateOptions{})
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.want, apiErr.Status)
		})
	}
}

func TestTranslateWithGlossary_SendsGlossaryID(t *testing.T) {
	var gotGlossary string
	c := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotGlossary = r.PostForm.Get("glossary_id")
		w.Write([]byte(`{"translations":[{"text":"Fachbegriff"}]}`))
	})

	res, err := c.TranslateWithGlossary(t.Context(), []string{"term"}, "DE", "g-42", GlossaryTranslateOptions{SourceLang: "EN"})
	require.NoError(t, err)
	assert.Equal(t, "g-42", gotGlossary)
	require.Len(t, res.Translations, 1)
}

func TestNonTranslationOps_AlwaysCollapseTo500(t *testing.T) {
	// The same vendor statuses that map fine-grained on translation calls
	// collapse to 500 everywhere else.
	for _, httpStatus := range []int{http.StatusForbidden, 456, http.StatusTooManyRequests} {
		c := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(httpStatus)
			w.Write([]byte(`{"message":"nope"}`))
		})

		_, err := c.ListGlossaries(t.Context())
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, StatusInternal, apiErr.Status)

		_, err = c.GetUsage(t.Context())
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, StatusInternal, apiErr.Status)
	}
}

func TestAPIError_ChainsVendorCause(t *testing.T) {
	c := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"bad key"}`))
	})

	_, err := c.TranslateText(t.Context(), []string{"x"}, "DE", TranslateTextOptions{})

	var vendorErr *deepl.Error
	require.ErrorAs(t, err, &vendorErr)
	assert.Equal(t, deepl.KindAuthorization, vendorErr.Kind)
}

func TestDetectLanguage(t *testing.T) {
	var gotTarget string
	var gotText []string
	c := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotTarget = r.PostForm.Get("target_lang")
		gotText = r.PostForm["text"]
		w.Write([]byte(`{"translations":[{"detected_source_language":"FR","text":"hello"}]}`))
	})

	res, err := c.DetectLanguage(t.Context(), "bonjour le monde")
	require.NoError(t, err)

	assert.Equal(t, "EN-US", gotTarget)
	assert.Equal(t, []string{"bonjour le monde"}, gotText)
	require.NotNil(t, res.DetectedLanguage)
	assert.Equal(t, "FR", *res.DetectedLanguage)
	assert.Equal(t, "bonjour le monde", res.Text)
}

func TestDetectLanguage_TruncatesLongInput(t *testing.T) {
	var gotText string
	c := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotText = r.PostForm.Get("text")
		w.Write([]byte(`{"translations":[{"detected_source_language":"DE","text":"x"}]}`))
	})

	long := strings.Repeat("ä", 1500)
	res, err := c.DetectLanguage(t.Context(), long)
	require.NoError(t, err)

	// Only a 1000-rune sample goes over the wire, and the echo is capped
	// at 100 runes plus an ellipsis.
	assert.Equal(t, 1000, len([]rune(gotText)))
	assert.Equal(t, strings.Repeat("ä", 100)+"...", res.Text)
}

func TestListLanguages_FormalityTriState(t *testing.T) {
	c := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("type") {
		case "source":
			w.Write([]byte(`[{"language":"EN","name":"English"}]`))
		default:
			w.Write([]byte(`[
				{"language":"DE","name":"German","supports_formality":true},
				{"language":"JA","name":"Japanese","supports_formality":false}
			]`))
		}
	})

	// Source-direction listings never report formality support.
	src, err := c.ListLanguages(t.Context(), "source")
	require.NoError(t, err)
	require.Len(t, src.Languages, 1)
	assert.Nil(t, src.Languages[0].SupportsFormality)

	// Target-direction listings keep explicit true and false distinct
	// from absent.
	tgt, err := c.ListLanguages(t.Context(), "target")
	require.NoError(t, err)
	require.Len(t, tgt.Languages, 2)
	require.NotNil(t, tgt.Languages[0].SupportsFormality)
	assert.True(t, *tgt.Languages[0].SupportsFormality)
	require.NotNil(t, tgt.Languages[1].SupportsFormality)
	assert.False(t, *tgt.Languages[1].SupportsFormality)
}

func TestGetUsage_CharacterDefaultsToZero(t *testing.T) {
	c := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"document_count":3,"document_limit":10}`))
	})

	usage, err := c.GetUsage(t.Context())
	require.NoError(t, err)

	assert.Zero(t, usage.CharacterCount)
	assert.Zero(t, usage.CharacterLimit)
	require.NotNil(t, usage.DocumentCount)
	assert.EqualValues(t, 3, *usage.DocumentCount)
	assert.Nil(t, usage.TeamDocumentCount)
}

func TestGlossaryLifecycle(t *testing.T) {
	c := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v2/glossaries":
			w.Write([]byte(`{
				"glossary_id":"g-1","name":"tech","ready":false,
				"source_lang":"en","target_lang":"de",
				"creation_time":"2024-03-01T10:00:00+02:00","entry_count":2
			}`))
		case r.Method == http.MethodGet && r.URL.Path == "/v2/glossaries":
			w.Write([]byte(`{"glossaries":[{
				"glossary_id":"g-1","name":"tech","ready":true,
				"source_lang":"en","target_lang":"de",
				"creation_time":"2024-03-01T10:00:00+02:00","entry_count":2
			}]}`))
		case r.Method == http.MethodGet && r.URL.Path == "/v2/glossaries/g-1":
			w.Write([]byte(`{
				"glossary_id":"g-1","name":"tech","ready":true,
				"source_lang":"en","target_lang":"de",
				"creation_time":"2024-03-01T10:00:00+02:00","entry_count":2
			}`))
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	created, err := c.CreateGlossary(t.Context(), "tech", "en", "de", map[string]string{"hello": "Hallo", "world": "Welt"})
	require.NoError(t, err)
	assert.Equal(t, "g-1", created.GlossaryID)
	assert.False(t, created.Ready)
	// Vendor zone offset survives normalization.
	assert.Equal(t, "2024-03-01T10:00:00+02:00", created.CreationTime)

	list, err := c.ListGlossaries(t.Context())
	require.NoError(t, err)
	require.Len(t, list.Glossaries, 1)
	assert.True(t, list.Glossaries[0].Ready)

	got, err := c.GetGlossary(t.Context(), "g-1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.EntryCount)

	deleted, err := c.DeleteGlossary(t.Context(), "g-1")
	require.NoError(t, err)
	assert.True(t, deleted.Success)
	assert.Equal(t, "g-1", deleted.GlossaryID)
}

func TestUploadDocument(t *testing.T) {
	c := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "report.txt", header.Filename)
		w.Write([]byte(`{"document_id":"doc-1","document_key":"key-1"}`))
	})

	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(path, []byte("quarterly report"), 0o644))

	res, err := c.UploadDocument(t.Context(), path, "DE", UploadDocumentOptions{SourceLang: "en"})
	require.NoError(t, err)
	assert.Equal(t, "doc-1", res.DocumentID)
	assert.Equal(t, "key-1", res.DocumentKey)
}

func TestUploadDocument_MissingFileIs404(t *testing.T) {
	c := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for a missing local file")
	})

	missing := filepath.Join(t.TempDir(), "nope.docx")
	_, err := c.UploadDocument(t.Context(), missing, "DE", UploadDocumentOptions{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, StatusNotFound, apiErr.Status)
	assert.Contains(t, apiErr.Message, missing)
}

func TestUploadDocument_VendorFailureIs500(t *testing.T) {
	c := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"bad key"}`))
	})

	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := c.UploadDocument(t.Context(), path, "DE", UploadDocumentOptions{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, StatusInternal, apiErr.Status)
}

func TestGetDocumentStatus_StatePriority(t *testing.T) {
	tests := []struct {
		name string
		body string
		want DocumentState
	}{
		{
			"done beats error and remaining",
			`{"document_id":"d","status":"done","error_message":"stale","seconds_remaining":5,"billed_characters":100}`,
			DocumentDone,
		},
		{
			"error beats remaining",
			`{"document_id":"d","status":"error","error_message":"bad format","seconds_remaining":5}`,
			DocumentError,
		},
		{
			"remaining means translating",
			`{"document_id":"d","status":"translating","seconds_remaining":30}`,
			DocumentTranslating,
		},
		{
			"bare status is queued",
			`{"document_id":"d","status":"queued"}`,
			DocumentQueued,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			res, err := c.GetDocumentStatus(t.Context(), "d", "k")
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Status)

			if tt.want == DocumentError {
				require.NotNil(t, res.ErrorMessage)
				assert.Equal(t, "bad format", *res.ErrorMessage)
			}
		})
	}
}

func TestDownloadDocument_ToMemory(t *testing.T) {
	payload := []byte("translated bytes")
	c := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	})

	res, err := c.DownloadDocument(t.Context(), "doc-1", "key-1", "")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.EqualValues(t, len(payload), res.Size)
	assert.Equal(t, "application/octet-stream", res.ContentType)
	assert.Equal(t, "Document downloaded to memory buffer", res.Note)
}

func TestDownloadDocument_ToFile(t *testing.T) {
	payload := []byte("translated file bytes")
	c := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	})

	out := filepath.Join(t.TempDir(), "out", "translated.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(out), 0o755))

	res, err := c.DownloadDocument(t.Context(), "doc-1", "key-1", out)
	require.NoError(t, err)
	assert.EqualValues(t, len(payload), res.Size)
	assert.Equal(t, "Document saved to "+out, res.Note)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

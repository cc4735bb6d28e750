package translator

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/translatekit/deepl-mcp/internal/deepl"
	"github.com/translatekit/deepl-mcp/internal/errors"
	"github.com/translatekit/deepl-mcp/pkg/fileutil"
)

// detectSampleLimit caps how much text is sent for language detection.
const detectSampleLimit = 1000

// detectEchoLimit caps how much of the analyzed text is echoed back.
const detectEchoLimit = 100

// downloadContentType is the placeholder reported for document downloads;
// the vendor does not surface the real content type through this call.
const downloadContentType = "application/octet-stream"

// Client performs DeepL operations and normalizes every result and
// failure. It holds no per-call state and is safe for concurrent use;
// construct one per process and reuse it.
type Client struct {
	api *deepl.Client
}

// New wraps an already-configured vendor client.
func New(api *deepl.Client) *Client {
	return &Client{api: api}
}

// NewFromKey constructs the vendor client from an auth key. It fails fast
// with ErrMissingAPIKey before any network interaction when the key is
// empty.
func NewFromKey(authKey string, opts ...deepl.Option) (*Client, error) {
	if authKey == "" {
		return nil, errors.ErrMissingAPIKey
	}
	return New(deepl.NewClient(authKey, opts...)), nil
}

// ServerURL reports the vendor endpoint this client targets.
func (c *Client) ServerURL() string {
	return c.api.ServerURL()
}

// Close releases network resources held by the vendor client.
func (c *Client) Close() {
	c.api.Close()
}

// TranslateTextOptions holds the optional parameters of TranslateText.
type TranslateTextOptions struct {
	SourceLang         string
	Formality          string
	PreserveFormatting bool
	TagHandling        string
	SplitSentences     string
}

// TranslateText translates text segments into targetLang. The result
// always has exactly one translation per input segment, preserving order.
// Failures are classified fine-grained: 403/456/429/500.
func (c *Client) TranslateText(ctx context.Context, texts []string, targetLang string, opts TranslateTextOptions) (*TranslationResponse, error) {
	results, err := c.api.TranslateText(ctx, texts, targetLang, &deepl.TranslateOptions{
		SourceLang:         opts.SourceLang,
		Formality:          opts.Formality,
		PreserveFormatting: opts.PreserveFormatting,
		TagHandling:        opts.TagHandling,
		SplitSentences:     opts.SplitSentences,
	})
	if err != nil {
		return nil, classifyTranslation(err)
	}
	return newTranslationResponse(results), nil
}

// GlossaryTranslateOptions holds the optional parameters of
// TranslateWithGlossary.
type GlossaryTranslateOptions struct {
	SourceLang string
	Formality  string
}

// TranslateWithGlossary translates text segments applying a glossary.
// Like TranslateText, failures are classified fine-grained.
func (c *Client) TranslateWithGlossary(ctx context.Context, texts []string, targetLang, glossaryID string, opts GlossaryTranslateOptions) (*TranslationResponse, error) {
	results, err := c.api.TranslateText(ctx, texts, targetLang, &deepl.TranslateOptions{
		SourceLang: opts.SourceLang,
		Formality:  opts.Formality,
		GlossaryID: glossaryID,
	})
	if err != nil {
		return nil, classifyTranslation(err)
	}
	return newTranslationResponse(results), nil
}

// DetectLanguage reports the language of text. DeepL has no dedicated
// detection endpoint, so the first 1000 characters are translated to EN-US
// and the detected source language is read off the result.
func (c *Client) DetectLanguage(ctx context.Context, text string) (*LanguageDetectionResponse, error) {
	results, err := c.api.TranslateText(ctx, []string{truncateRunes(text, detectSampleLimit)}, "EN-US", nil)
	if err != nil {
		return nil, classify(err)
	}

	resp := &LanguageDetectionResponse{Text: text}
	if len([]rune(text)) > detectEchoLimit {
		resp.Text = truncateRunes(text, detectEchoLimit) + "..."
	}
	if len(results) > 0 && results[0].DetectedSourceLanguage != "" {
		lang := results[0].DetectedSourceLanguage
		resp.DetectedLanguage = &lang
	}
	return resp, nil
}

// ListLanguages lists supported languages for the given direction
// ("source" or "target"; anything else defaults to target, matching the
// vendor client behavior).
func (c *Client) ListLanguages(ctx context.Context, languageType string) (*LanguagesResponse, error) {
	var (
		langs []deepl.Language
		err   error
	)
	if languageType == "source" {
		langs, err = c.api.GetSourceLanguages(ctx)
	} else {
		langs, err = c.api.GetTargetLanguages(ctx)
	}
	if err != nil {
		return nil, classify(err)
	}
	return newLanguagesResponse(langs), nil
}

// GetUsage reports account usage statistics.
func (c *Client) GetUsage(ctx context.Context) (*UsageResponse, error) {
	usage, err := c.api.GetUsage(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return newUsageResponse(usage), nil
}

// ListGlossaries lists the account's glossaries.
func (c *Client) ListGlossaries(ctx context.Context) (*GlossariesResponse, error) {
	infos, err := c.api.ListGlossaries(ctx)
	if err != nil {
		return nil, classify(err)
	}
	glossaries := make([]Glossary, len(infos))
	for i := range infos {
		glossaries[i] = *newGlossary(&infos[i])
	}
	return &GlossariesResponse{Glossaries: glossaries}, nil
}

// CreateGlossary creates a glossary from source→target entry pairs.
func (c *Client) CreateGlossary(ctx context.Context, name, sourceLang, targetLang string, entries map[string]string) (*Glossary, error) {
	info, err := c.api.CreateGlossary(ctx, name, sourceLang, targetLang, entries)
	if err != nil {
		return nil, classify(err)
	}
	return newGlossary(info), nil
}

// GetGlossary retrieves glossary details by id.
func (c *Client) GetGlossary(ctx context.Context, glossaryID string) (*Glossary, error) {
	info, err := c.api.GetGlossary(ctx, glossaryID)
	if err != nil {
		return nil, classify(err)
	}
	return newGlossary(info), nil
}

// DeleteGlossary deletes a glossary by id.
func (c *Client) DeleteGlossary(ctx context.Context, glossaryID string) (*DeleteGlossaryResponse, error) {
	if err := c.api.DeleteGlossary(ctx, glossaryID); err != nil {
		return nil, classify(err)
	}
	return &DeleteGlossaryResponse{Success: true, GlossaryID: glossaryID}, nil
}

// UploadDocumentOptions holds the optional parameters of UploadDocument.
type UploadDocumentOptions struct {
	SourceLang string
	Formality  string

	// Filename overrides the name sent for vendor format detection;
	// defaults to the base name of the uploaded path.
	Filename string
}

// UploadDocument submits a local file for translation. A missing path is
// the one condition reported as 404; vendor failures map to 500.
func (c *Client) UploadDocument(ctx context.Context, documentPath, targetLang string, opts UploadDocumentOptions) (*DocumentUploadResponse, error) {
	file, err := os.Open(documentPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newAPIError(StatusNotFound, "Document not found: "+documentPath, err)
		}
		return nil, classify(err)
	}
	defer file.Close()

	filename := opts.Filename
	if filename == "" {
		filename = filepath.Base(documentPath)
	}

	handle, err := c.api.UploadDocument(ctx, file, filename, targetLang, &deepl.DocumentUploadOptions{
		SourceLang: opts.SourceLang,
		Formality:  opts.Formality,
	})
	if err != nil {
		return nil, classify(err)
	}
	return &DocumentUploadResponse{
		DocumentID:  handle.DocumentID,
		DocumentKey: handle.DocumentKey,
	}, nil
}

// GetDocumentStatus checks the translation state of an uploaded document.
func (c *Client) GetDocumentStatus(ctx context.Context, documentID, documentKey string) (*DocumentStatusResponse, error) {
	status, err := c.api.GetDocumentStatus(ctx, deepl.DocumentHandle{
		DocumentID:  documentID,
		DocumentKey: documentKey,
	})
	if err != nil {
		return nil, classify(err)
	}
	return newDocumentStatusResponse(documentID, status), nil
}

// DownloadDocument retrieves a completed document translation. With an
// output path the bytes are written atomically to disk and the reported
// size is the resulting file size; without one the bytes stay in memory
// and the reported size is the buffer length.
func (c *Client) DownloadDocument(ctx context.Context, documentID, documentKey, outputPath string) (*DocumentDownloadResponse, error) {
	handle := deepl.DocumentHandle{DocumentID: documentID, DocumentKey: documentKey}

	var buf bytes.Buffer
	size, err := c.api.DownloadDocument(ctx, handle, &buf)
	if err != nil {
		return nil, classify(err)
	}

	resp := &DocumentDownloadResponse{
		Success:     true,
		DocumentID:  documentID,
		ContentType: downloadContentType,
		Size:        size,
		Note:        "Document downloaded to memory buffer",
	}

	if outputPath != "" {
		if err := fileutil.AtomicWriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
			return nil, classify(err)
		}
		if info, statErr := os.Stat(outputPath); statErr == nil {
			resp.Size = info.Size()
		}
		resp.Note = "Document saved to " + outputPath
	}

	return resp, nil
}

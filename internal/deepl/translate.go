package deepl

import (
	"context"
	"net/url"
)

// Translation is one translated segment as reported by the API.
type Translation struct {
	DetectedSourceLanguage string `json:"detected_source_language"`
	Text                   string `json:"text"`
}

// TranslateOptions holds the optional parameters of a translate call.
// Zero values mean "not sent"; the API applies its own defaults.
type TranslateOptions struct {
	// SourceLang is the source language code; empty enables auto-detection.
	SourceLang string

	// Formality controls formal/informal phrasing: default, more, less,
	// prefer_more, prefer_less.
	Formality string

	// PreserveFormatting disables automatic formatting correction.
	PreserveFormatting bool

	// TagHandling enables xml or html tag-aware translation.
	TagHandling string

	// SplitSentences controls sentence splitting: "0", "1", or "nonewlines".
	SplitSentences string

	// GlossaryID applies a glossary; requires SourceLang to be set.
	GlossaryID string
}

type translateResponse struct {
	Translations []Translation `json:"translations"`
}

// TranslateText translates one or more text segments into targetLang.
// The response always carries one translation per input segment, in input
// order.
func (c *Client) TranslateText(ctx context.Context, texts []string, targetLang string, opts *TranslateOptions) ([]Translation, error) {
	form := url.Values{}
	for _, t := range texts {
		form.Add("text", t)
	}
	form.Set("target_lang", targetLang)

	if opts != nil {
		if opts.SourceLang != "" {
			form.Set("source_lang", opts.SourceLang)
		}
		if opts.Formality != "" {
			form.Set("formality", opts.Formality)
		}
		if opts.PreserveFormatting {
			form.Set("preserve_formatting", "1")
		}
		if opts.TagHandling != "" {
			form.Set("tag_handling", opts.TagHandling)
		}
		if opts.SplitSentences != "" {
			form.Set("split_sentences", opts.SplitSentences)
		}
		if opts.GlossaryID != "" {
			form.Set("glossary_id", opts.GlossaryID)
		}
	}

	var resp translateResponse
	if err := c.callForm(ctx, "POST", "/v2/translate", form, &resp); err != nil {
		return nil, err
	}
	return resp.Translations, nil
}

// Language describes one supported language.
type Language struct {
	Code string `json:"language"`
	Name string `json:"name"`

	// SupportsFormality is only reported for target-language listings.
	SupportsFormality *bool `json:"supports_formality,omitempty"`
}

// GetSourceLanguages lists supported source languages.
func (c *Client) GetSourceLanguages(ctx context.Context) ([]Language, error) {
	return c.getLanguages(ctx, "source")
}

// GetTargetLanguages lists supported target languages.
func (c *Client) GetTargetLanguages(ctx context.Context) ([]Language, error) {
	return c.getLanguages(ctx, "target")
}

func (c *Client) getLanguages(ctx context.Context, langType string) ([]Language, error) {
	var langs []Language
	path := "/v2/languages?type=" + url.QueryEscape(langType)
	if err := c.callForm(ctx, "GET", path, nil, &langs); err != nil {
		return nil, err
	}
	return langs, nil
}

// Usage reports account usage counters. Each pair is present only when it
// applies to the account plan: character-only plans omit the document
// counters, document-only plans omit the character counters.
type Usage struct {
	CharacterCount    *int64 `json:"character_count,omitempty"`
	CharacterLimit    *int64 `json:"character_limit,omitempty"`
	DocumentCount     *int64 `json:"document_count,omitempty"`
	DocumentLimit     *int64 `json:"document_limit,omitempty"`
	TeamDocumentCount *int64 `json:"team_document_count,omitempty"`
	TeamDocumentLimit *int64 `json:"team_document_limit,omitempty"`
}

// GetUsage retrieves usage and limits for the current billing period.
func (c *Client) GetUsage(ctx context.Context) (*Usage, error) {
	var usage Usage
	if err := c.callForm(ctx, "GET", "/v2/usage", nil, &usage); err != nil {
		return nil, err
	}
	return &usage, nil
}

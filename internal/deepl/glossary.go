package deepl

import (
	"context"
	"net/url"
	"sort"
	"strings"
	"time"
)

// GlossaryInfo describes a glossary as reported by the API. The entry list
// itself is not included; Ready transitions to true asynchronously after
// creation and must be polled via GetGlossary.
type GlossaryInfo struct {
	GlossaryID   string    `json:"glossary_id"`
	Name         string    `json:"name"`
	Ready        bool      `json:"ready"`
	SourceLang   string    `json:"source_lang"`
	TargetLang   string    `json:"target_lang"`
	CreationTime time.Time `json:"creation_time"`
	EntryCount   int       `json:"entry_count"`
}

type glossariesResponse struct {
	Glossaries []GlossaryInfo `json:"glossaries"`
}

// ListGlossaries lists all glossaries of the account.
func (c *Client) ListGlossaries(ctx context.Context) ([]GlossaryInfo, error) {
	var resp glossariesResponse
	if err := c.callForm(ctx, "GET", "/v2/glossaries", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Glossaries, nil
}

// CreateGlossary creates a glossary from source→target entry pairs.
// Entries are encoded as TSV with a deterministic (sorted) key order.
func (c *Client) CreateGlossary(ctx context.Context, name, sourceLang, targetLang string, entries map[string]string) (*GlossaryInfo, error) {
	form := url.Values{}
	form.Set("name", name)
	form.Set("source_lang", sourceLang)
	form.Set("target_lang", targetLang)
	form.Set("entries", encodeEntriesTSV(entries))
	form.Set("entries_format", "tsv")

	var info GlossaryInfo
	if err := c.callForm(ctx, "POST", "/v2/glossaries", form, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetGlossary retrieves one glossary by id.
func (c *Client) GetGlossary(ctx context.Context, glossaryID string) (*GlossaryInfo, error) {
	var info GlossaryInfo
	path := "/v2/glossaries/" + url.PathEscape(glossaryID)
	if err := c.callForm(ctx, "GET", path, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// DeleteGlossary deletes one glossary by id.
func (c *Client) DeleteGlossary(ctx context.Context, glossaryID string) error {
	path := "/v2/glossaries/" + url.PathEscape(glossaryID)
	return c.callForm(ctx, "DELETE", path, nil, nil)
}

// encodeEntriesTSV renders entries as tab-separated lines in sorted key
// order so identical entry sets always produce identical payloads.
func encodeEntriesTSV(entries map[string]string) string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(k)
		b.WriteByte('\t')
		b.WriteString(entries[k])
	}
	return b.String()
}

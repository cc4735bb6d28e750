package translator

import (
	"time"

	"github.com/translatekit/deepl-mcp/internal/deepl"
)

// newTranslationResponse copies vendor translations into the canonical
// response record. It is the single conversion point shared by both
// translation operations, so no downstream code re-checks result shape.
func newTranslationResponse(results []deepl.Translation) *TranslationResponse {
	translations := make([]Translation, len(results))
	for i, r := range results {
		translations[i] = Translation{Text: r.Text}
		if r.DetectedSourceLanguage != "" {
			lang := r.DetectedSourceLanguage
			translations[i].DetectedSourceLanguage = &lang
		}
	}
	return &TranslationResponse{Translations: translations}
}

// newLanguagesResponse projects vendor language descriptors. The formality
// flag is read opportunistically: source-direction descriptors never carry
// it, and it stays absent rather than defaulting to false.
func newLanguagesResponse(langs []deepl.Language) *LanguagesResponse {
	out := make([]Language, len(langs))
	for i, l := range langs {
		out[i] = Language{
			Code:              l.Code,
			Name:              l.Name,
			SupportsFormality: l.SupportsFormality,
		}
	}
	return &LanguagesResponse{Languages: out}
}

// newUsageResponse maps the vendor usage counters. Character usage is
// always reported, as zero when the plan has no character counter; the
// document pairs stay absent when they do not apply.
func newUsageResponse(usage *deepl.Usage) *UsageResponse {
	resp := &UsageResponse{
		DocumentCount:     usage.DocumentCount,
		DocumentLimit:     usage.DocumentLimit,
		TeamDocumentCount: usage.TeamDocumentCount,
		TeamDocumentLimit: usage.TeamDocumentLimit,
	}
	if usage.CharacterCount != nil {
		resp.CharacterCount = *usage.CharacterCount
	}
	if usage.CharacterLimit != nil {
		resp.CharacterLimit = *usage.CharacterLimit
	}
	return resp
}

// newGlossary projects a vendor glossary. The creation timestamp is
// serialized to RFC 3339 keeping whatever zone offset the vendor returned.
func newGlossary(info *deepl.GlossaryInfo) *Glossary {
	return &Glossary{
		GlossaryID:   info.GlossaryID,
		Name:         info.Name,
		Ready:        info.Ready,
		SourceLang:   info.SourceLang,
		TargetLang:   info.TargetLang,
		CreationTime: info.CreationTime.Format(time.RFC3339),
		EntryCount:   info.EntryCount,
	}
}

// newDocumentStatusResponse derives the document state. The conditions are
// checked in strict priority order: completion beats a present error
// message, which beats a remaining-time estimate, which beats the queued
// default. A document can simultaneously carry a stale estimate and a
// completion flag; completion always wins.
func newDocumentStatusResponse(documentID string, status *deepl.DocumentStatus) *DocumentStatusResponse {
	state := DocumentQueued
	switch {
	case status.Done():
		state = DocumentDone
	case status.ErrorMessage != "":
		state = DocumentError
	case status.SecondsRemaining != nil:
		state = DocumentTranslating
	}

	resp := &DocumentStatusResponse{
		DocumentID:       documentID,
		Status:           state,
		SecondsRemaining: status.SecondsRemaining,
		BilledCharacters: status.BilledCharacters,
	}
	if status.ErrorMessage != "" {
		msg := status.ErrorMessage
		resp.ErrorMessage = &msg
	}
	return resp
}

// truncateRunes shortens s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

package translator

// Translation is a single translated segment.
type Translation struct {
	// DetectedSourceLanguage is set when the vendor auto-detected the
	// source language; omitted when the caller pinned it.
	DetectedSourceLanguage *string `json:"detected_source_language,omitempty"`

	// Text is the translated text.
	Text string `json:"text"`
}

// TranslationResponse is the result of a translate operation. Translations
// always has one element per input segment, in input order — a single-text
// request yields a one-element list, never a bare object.
type TranslationResponse struct {
	Translations []Translation `json:"translations"`
}

// Language describes one supported language.
type Language struct {
	// Code is the language code, e.g. "DE" or "EN-US".
	Code string `json:"language"`

	// Name is the English display name.
	Name string `json:"name"`

	// SupportsFormality is tri-state: true/false for target-language
	// listings, omitted for source-language listings where the vendor does
	// not report it. Absent and false are distinct.
	SupportsFormality *bool `json:"supports_formality,omitempty"`
}

// LanguagesResponse lists supported languages for one direction.
type LanguagesResponse struct {
	Languages []Language `json:"languages"`
}

// UsageResponse reports account usage. Character fields are always present
// and default to 0 on plans without character-based billing; document
// fields are omitted (not zeroed) when they do not apply.
type UsageResponse struct {
	CharacterCount    int64  `json:"character_count"`
	CharacterLimit    int64  `json:"character_limit"`
	DocumentCount     *int64 `json:"document_count,omitempty"`
	DocumentLimit     *int64 `json:"document_limit,omitempty"`
	TeamDocumentCount *int64 `json:"team_document_count,omitempty"`
	TeamDocumentLimit *int64 `json:"team_document_limit,omitempty"`
}

// Glossary describes a custom glossary. Ready transitions false→true
// asynchronously on the vendor side; poll via GetGlossary.
type Glossary struct {
	GlossaryID string `json:"glossary_id"`
	Name       string `json:"name"`
	Ready      bool   `json:"ready"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`

	// CreationTime is an RFC 3339 timestamp preserving the vendor's zone
	// offset.
	CreationTime string `json:"creation_time"`

	EntryCount int `json:"entry_count"`
}

// GlossariesResponse lists all glossaries of the account.
type GlossariesResponse struct {
	Glossaries []Glossary `json:"glossaries"`
}

// DeleteGlossaryResponse confirms a glossary deletion.
type DeleteGlossaryResponse struct {
	Success    bool   `json:"success"`
	GlossaryID string `json:"glossary_id"`
}

// DocumentUploadResponse carries the opaque capability pair for an uploaded
// document. Both values are required for status checks and download; the
// key is not recoverable from the id.
type DocumentUploadResponse struct {
	DocumentID  string `json:"document_id"`
	DocumentKey string `json:"document_key"`
}

// DocumentState is the derived translation state of a document.
type DocumentState string

// Document states, from initial to terminal.
const (
	DocumentQueued      DocumentState = "queued"
	DocumentTranslating DocumentState = "translating"
	DocumentDone        DocumentState = "done"
	DocumentError       DocumentState = "error"
)

// DocumentStatusResponse reports the state of a document translation.
type DocumentStatusResponse struct {
	DocumentID       string        `json:"document_id"`
	Status           DocumentState `json:"status"`
	SecondsRemaining *int64        `json:"seconds_remaining,omitempty"`
	BilledCharacters *int64        `json:"billed_characters,omitempty"`
	ErrorMessage     *string       `json:"error_message,omitempty"`
}

// DocumentDownloadResponse reports the outcome of a document download.
type DocumentDownloadResponse struct {
	Success    bool   `json:"success"`
	DocumentID string `json:"document_id"`

	// ContentType is a fixed placeholder: the vendor does not surface the
	// real content type through this call shape.
	ContentType string `json:"content_type"`

	// Size is the output file size when saved to disk, otherwise the
	// in-memory buffer length.
	Size int64 `json:"size"`

	Note string `json:"note"`
}

// LanguageDetectionResponse reports the detected source language of a text
// sample.
type LanguageDetectionResponse struct {
	DetectedLanguage *string `json:"detected_language,omitempty"`

	// Text echoes the analyzed text, truncated to 100 characters.
	Text string `json:"text"`
}

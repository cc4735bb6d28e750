package server

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/translatekit/deepl-mcp/internal/translator"
)

type translateTextInput struct {
	Text               TextList `json:"text"`
	TargetLang         string   `json:"target_lang"`
	SourceLang         string   `json:"source_lang,omitempty"`
	Formality          string   `json:"formality,omitempty"`
	PreserveFormatting bool     `json:"preserve_formatting,omitempty"`
	TagHandling        string   `json:"tag_handling,omitempty"`
	SplitSentences     string   `json:"split_sentences,omitempty"`
}

type translateWithGlossaryInput struct {
	Text       TextList `json:"text"`
	TargetLang string   `json:"target_lang"`
	GlossaryID string   `json:"glossary_id"`
	SourceLang string   `json:"source_lang,omitempty"`
	Formality  string   `json:"formality,omitempty"`
}

type detectLanguageInput struct {
	Text string `json:"text"`
}

type listLanguagesInput struct {
	Type string `json:"type,omitempty"`
}

type emptyInput struct{}

type createGlossaryInput struct {
	Name       string            `json:"name"`
	SourceLang string            `json:"source_lang"`
	TargetLang string            `json:"target_lang"`
	Entries    map[string]string `json:"entries"`
}

type glossaryIDInput struct {
	GlossaryID string `json:"glossary_id"`
}

type translateDocumentInput struct {
	DocumentPath string `json:"document_path"`
	TargetLang   string `json:"target_lang"`
	SourceLang   string `json:"source_lang,omitempty"`
	Formality    string `json:"formality,omitempty"`
	Filename     string `json:"filename,omitempty"`
}

type documentHandleInput struct {
	DocumentID  string `json:"document_id"`
	DocumentKey string `json:"document_key"`
}

type downloadDocumentInput struct {
	DocumentID  string `json:"document_id"`
	DocumentKey string `json:"document_key"`
	OutputPath  string `json:"output_path,omitempty"`
}

// textSchema accepts a bare string or an array of strings; the inferred
// schema for TextList would only admit the array shape.
func textSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Description: "Text to translate: a single string or a list of strings.",
		AnyOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "array", Items: &jsonschema.Schema{Type: "string"}},
		},
	}
}

func translateTextSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"text":        textSchema(),
			"target_lang": {Type: "string", Description: "Target language code, e.g. DE or EN-US."},
			"source_lang": {Type: "string", Description: "Source language code; auto-detected when omitted."},
			"formality": {Type: "string", Description: "Formality preference: more, less, prefer_more, prefer_less or default.",
				Enum: []any{"more", "less", "prefer_more", "prefer_less", "default"}},
			"preserve_formatting": {Type: "boolean", Description: "Keep original formatting."},
			"tag_handling":        {Type: "string", Description: "Tag handling mode: xml or html.", Enum: []any{"xml", "html"}},
			"split_sentences":     {Type: "string", Description: "Sentence splitting: 0, 1 or nonewlines.", Enum: []any{"0", "1", "nonewlines"}},
		},
		Required: []string{"text", "target_lang"},
	}
}

func translateWithGlossarySchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"text":        textSchema(),
			"target_lang": {Type: "string", Description: "Target language code, e.g. DE or EN-US."},
			"glossary_id": {Type: "string", Description: "Id of the glossary to apply."},
			"source_lang": {Type: "string", Description: "Source language code; must match the glossary's source language."},
			"formality": {Type: "string", Description: "Formality preference.",
				Enum: []any{"more", "less", "prefer_more", "prefer_less", "default"}},
		},
		Required: []string{"text", "target_lang", "glossary_id"},
	}
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "translate_text",
		Description: "Translate text into a target language using DeepL.",
		InputSchema: translateTextSchema(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, in translateTextInput) (*mcp.CallToolResult, translator.TranslationResponse, error) {
		c, err := s.translator()
		if err != nil {
			return nil, translator.TranslationResponse{}, s.toolError("translate_text", err)
		}
		res, err := c.TranslateText(ctx, in.Text, in.TargetLang, translator.TranslateTextOptions{
			SourceLang:         in.SourceLang,
			Formality:          in.Formality,
			PreserveFormatting: in.PreserveFormatting,
			TagHandling:        in.TagHandling,
			SplitSentences:     in.SplitSentences,
		})
		if err != nil {
			return nil, translator.TranslationResponse{}, s.toolError("translate_text", err)
		}
		return nil, *res, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "translate_with_glossary",
		Description: "Translate text applying a DeepL glossary for consistent terminology.",
		InputSchema: translateWithGlossarySchema(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, in translateWithGlossaryInput) (*mcp.CallToolResult, translator.TranslationResponse, error) {
		c, err := s.translator()
		if err != nil {
			return nil, translator.TranslationResponse{}, s.toolError("translate_with_glossary", err)
		}
		res, err := c.TranslateWithGlossary(ctx, in.Text, in.TargetLang, in.GlossaryID, translator.GlossaryTranslateOptions{
			SourceLang: in.SourceLang,
			Formality:  in.Formality,
		})
		if err != nil {
			return nil, translator.TranslationResponse{}, s.toolError("translate_with_glossary", err)
		}
		return nil, *res, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "detect_language",
		Description: "Detect the language of a text sample.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in detectLanguageInput) (*mcp.CallToolResult, translator.LanguageDetectionResponse, error) {
		c, err := s.translator()
		if err != nil {
			return nil, translator.LanguageDetectionResponse{}, s.toolError("detect_language", err)
		}
		res, err := c.DetectLanguage(ctx, in.Text)
		if err != nil {
			return nil, translator.LanguageDetectionResponse{}, s.toolError("detect_language", err)
		}
		return nil, *res, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_languages",
		Description: "List supported languages. Set type to source or target (default target).",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in listLanguagesInput) (*mcp.CallToolResult, translator.LanguagesResponse, error) {
		c, err := s.translator()
		if err != nil {
			return nil, translator.LanguagesResponse{}, s.toolError("list_languages", err)
		}
		res, err := c.ListLanguages(ctx, in.Type)
		if err != nil {
			return nil, translator.LanguagesResponse{}, s.toolError("list_languages", err)
		}
		return nil, *res, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_usage",
		Description: "Report DeepL account usage and limits.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, translator.UsageResponse, error) {
		c, err := s.translator()
		if err != nil {
			return nil, translator.UsageResponse{}, s.toolError("get_usage", err)
		}
		res, err := c.GetUsage(ctx)
		if err != nil {
			return nil, translator.UsageResponse{}, s.toolError("get_usage", err)
		}
		return nil, *res, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_glossaries",
		Description: "List all glossaries on the account.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, translator.GlossariesResponse, error) {
		c, err := s.translator()
		if err != nil {
			return nil, translator.GlossariesResponse{}, s.toolError("list_glossaries", err)
		}
		res, err := c.ListGlossaries(ctx)
		if err != nil {
			return nil, translator.GlossariesResponse{}, s.toolError("list_glossaries", err)
		}
		return nil, *res, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "create_glossary",
		Description: "Create a glossary from source to target term pairs.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in createGlossaryInput) (*mcp.CallToolResult, translator.Glossary, error) {
		c, err := s.translator()
		if err != nil {
			return nil, translator.Glossary{}, s.toolError("create_glossary", err)
		}
		res, err := c.CreateGlossary(ctx, in.Name, in.SourceLang, in.TargetLang, in.Entries)
		if err != nil {
			return nil, translator.Glossary{}, s.toolError("create_glossary", err)
		}
		return nil, *res, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_glossary",
		Description: "Retrieve glossary details by id.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in glossaryIDInput) (*mcp.CallToolResult, translator.Glossary, error) {
		c, err := s.translator()
		if err != nil {
			return nil, translator.Glossary{}, s.toolError("get_glossary", err)
		}
		res, err := c.GetGlossary(ctx, in.GlossaryID)
		if err != nil {
			return nil, translator.Glossary{}, s.toolError("get_glossary", err)
		}
		return nil, *res, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "delete_glossary",
		Description: "Delete a glossary by id.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in glossaryIDInput) (*mcp.CallToolResult, translator.DeleteGlossaryResponse, error) {
		c, err := s.translator()
		if err != nil {
			return nil, translator.DeleteGlossaryResponse{}, s.toolError("delete_glossary", err)
		}
		res, err := c.DeleteGlossary(ctx, in.GlossaryID)
		if err != nil {
			return nil, translator.DeleteGlossaryResponse{}, s.toolError("delete_glossary", err)
		}
		return nil, *res, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "translate_document",
		Description: "Upload a local document for translation. Returns a document id and key for status checks and download.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in translateDocumentInput) (*mcp.CallToolResult, translator.DocumentUploadResponse, error) {
		c, err := s.translator()
		if err != nil {
			return nil, translator.DocumentUploadResponse{}, s.toolError("translate_document", err)
		}
		res, err := c.UploadDocument(ctx, in.DocumentPath, in.TargetLang, translator.UploadDocumentOptions{
			SourceLang: in.SourceLang,
			Formality:  in.Formality,
			Filename:   in.Filename,
		})
		if err != nil {
			return nil, translator.DocumentUploadResponse{}, s.toolError("translate_document", err)
		}
		return nil, *res, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_document_status",
		Description: "Check the translation status of an uploaded document.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in documentHandleInput) (*mcp.CallToolResult, translator.DocumentStatusResponse, error) {
		c, err := s.translator()
		if err != nil {
			return nil, translator.DocumentStatusResponse{}, s.toolError("get_document_status", err)
		}
		res, err := c.GetDocumentStatus(ctx, in.DocumentID, in.DocumentKey)
		if err != nil {
			return nil, translator.DocumentStatusResponse{}, s.toolError("get_document_status", err)
		}
		return nil, *res, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "download_translated_document",
		Description: "Download a completed document translation, to a local path or an in-memory buffer.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in downloadDocumentInput) (*mcp.CallToolResult, translator.DocumentDownloadResponse, error) {
		c, err := s.translator()
		if err != nil {
			return nil, translator.DocumentDownloadResponse{}, s.toolError("download_translated_document", err)
		}
		res, err := c.DownloadDocument(ctx, in.DocumentID, in.DocumentKey, in.OutputPath)
		if err != nil {
			return nil, translator.DocumentDownloadResponse{}, s.toolError("download_translated_document", err)
		}
		return nil, *res, nil
	})
}

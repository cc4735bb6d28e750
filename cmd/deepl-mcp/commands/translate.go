package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/translatekit/deepl-mcp/internal/errors"
	"github.com/translatekit/deepl-mcp/internal/translator"
)

var (
	translateTo        string
	translateFrom      string
	translateFormality string
	translateGlossary  string
	translateDetect    bool
	translateJSON      bool
)

func init() {
	translateCmd.Flags().StringVar(&translateTo, "to", "",
		"target language code, e.g. DE or EN-US")
	translateCmd.Flags().StringVar(&translateFrom, "from", "",
		"source language code (default: auto-detect)")
	translateCmd.Flags().StringVar(&translateFormality, "formality", "",
		"formality: more, less, prefer_more, prefer_less")
	translateCmd.Flags().StringVar(&translateGlossary, "glossary", "",
		"glossary id to apply")
	translateCmd.Flags().BoolVar(&translateDetect, "detect", false,
		"only detect the language, do not translate")
	translateCmd.Flags().BoolVar(&translateJSON, "json", false,
		"output as JSON")
	rootCmd.AddCommand(translateCmd)
}

var translateCmd = &cobra.Command{
	Use:   "translate [text]...",
	Short: "Translate text or detect its language",
	Long: `Translate one or more text segments with DeepL.

Each argument is translated as its own segment; results come back in
argument order. With --glossary the given glossary constrains
terminology (its source language must match the text). With --detect
the text's language is reported instead of a translation.`,
	Example: `  # Translate to German
  deepl-mcp translate --to DE "Hello, world"

  # Batch translation with a glossary
  deepl-mcp translate --to DE --glossary g-123 "term one" "term two"

  # Detect the language
  deepl-mcp translate --detect "Bonjour le monde"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranslate,
}

func runTranslate(cmd *cobra.Command, args []string) error {
	client, err := newTranslator()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx := cmd.Context()

	if translateDetect {
		res, err := client.DetectLanguage(ctx, args[0])
		if err != nil {
			return err
		}
		if translateJSON {
			return printJSON(os.Stdout, res)
		}
		if res.DetectedLanguage == nil {
			fmt.Println("Language could not be detected.")
			return nil
		}
		fmt.Printf("Detected language: %s\n", *res.DetectedLanguage)
		return nil
	}

	if translateTo == "" {
		return errors.NewUserError(nil, "a target language is required: pass --to DE (or another code)")
	}

	var res *translator.TranslationResponse
	if translateGlossary != "" {
		res, err = client.TranslateWithGlossary(ctx, args, translateTo, translateGlossary,
			translator.GlossaryTranslateOptions{
				SourceLang: translateFrom,
				Formality:  translateFormality,
			})
	} else {
		res, err = client.TranslateText(ctx, args, translateTo,
			translator.TranslateTextOptions{
				SourceLang: translateFrom,
				Formality:  translateFormality,
			})
	}
	if err != nil {
		return err
	}

	if translateJSON {
		return printJSON(os.Stdout, res)
	}

	for _, tr := range res.Translations {
		fmt.Println(tr.Text)
	}
	return nil
}

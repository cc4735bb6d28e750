package commands

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/translatekit/deepl-mcp/internal/errors"
	"github.com/translatekit/deepl-mcp/internal/translator"
)

func init() {
	rootCmd.AddCommand(glossaryCmd)
}

var glossaryCmd = &cobra.Command{
	Use:   "glossary",
	Short: "Manage DeepL glossaries",
	Long: `Manage glossaries used to constrain terminology during translation.

A glossary maps source-language terms to fixed target-language terms for
one language pair. Apply one with 'deepl-mcp translate --glossary <id>'.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// resolveGlossaryID returns the id from args, or opens an interactive
// picker over the account's glossaries when no id was given.
func resolveGlossaryID(cmd *cobra.Command, args []string, client *translator.Client) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	list, err := client.ListGlossaries(cmd.Context())
	if err != nil {
		return "", err
	}
	if len(list.Glossaries) == 0 {
		return "", errors.NewUserError(errors.ErrNotFound, "No glossaries exist; create one with 'deepl-mcp glossary create'")
	}

	glossaries := list.Glossaries
	idx, err := fuzzyfinder.Find(
		glossaries,
		func(i int) string {
			return fmt.Sprintf("%s (%s→%s)", glossaries[i].Name, glossaries[i].SourceLang, glossaries[i].TargetLang)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			g := glossaries[i]
			return fmt.Sprintf("Name: %s\nID: %s\nPair: %s→%s\nEntries: %d\nReady: %v\nCreated: %s",
				g.Name, g.GlossaryID, g.SourceLang, g.TargetLang, g.EntryCount, g.Ready, g.CreationTime)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", errors.NewUserError(err, "No glossary selected")
		}
		return "", errors.Wrap(err, "interactive glossary selection failed")
	}

	return glossaries[idx].GlossaryID, nil
}

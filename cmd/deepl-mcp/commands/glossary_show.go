package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var glossaryShowJSON bool

func init() {
	glossaryShowCmd.Flags().BoolVar(&glossaryShowJSON, "json", false, "output as JSON")
	glossaryCmd.AddCommand(glossaryShowCmd)
}

var glossaryShowCmd = &cobra.Command{
	Use:   "show [glossary-id]",
	Short: "Show glossary details",
	Long: `Show the details of one glossary.

Without an id, an interactive picker lists the account's glossaries.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGlossaryShow,
}

func runGlossaryShow(cmd *cobra.Command, args []string) error {
	client, err := newTranslator()
	if err != nil {
		return err
	}
	defer client.Close()

	id, err := resolveGlossaryID(cmd, args, client)
	if err != nil {
		return err
	}

	res, err := client.GetGlossary(cmd.Context(), id)
	if err != nil {
		return err
	}

	if glossaryShowJSON {
		return printJSON(os.Stdout, res)
	}

	fmt.Printf("Name:    %s\n", res.Name)
	fmt.Printf("ID:      %s\n", res.GlossaryID)
	fmt.Printf("Pair:    %s→%s\n", res.SourceLang, res.TargetLang)
	fmt.Printf("Entries: %d\n", res.EntryCount)
	fmt.Printf("Ready:   %v\n", res.Ready)
	fmt.Printf("Created: %s\n", res.CreationTime)
	return nil
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	glossaryCmd.AddCommand(glossaryDeleteCmd)
}

var glossaryDeleteCmd = &cobra.Command{
	Use:   "delete [glossary-id]",
	Short: "Delete a glossary",
	Long: `Delete a glossary permanently.

Without an id, an interactive picker lists the account's glossaries.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGlossaryDelete,
}

func runGlossaryDelete(cmd *cobra.Command, args []string) error {
	client, err := newTranslator()
	if err != nil {
		return err
	}
	defer client.Close()

	id, err := resolveGlossaryID(cmd, args, client)
	if err != nil {
		return err
	}

	res, err := client.DeleteGlossary(cmd.Context(), id)
	if err != nil {
		return err
	}

	fmt.Printf("Deleted glossary %s\n", res.GlossaryID)
	return nil
}

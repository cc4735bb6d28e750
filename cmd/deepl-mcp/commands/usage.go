package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var usageJSON bool

func init() {
	usageCmd.Flags().BoolVar(&usageJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(usageCmd)
}

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show account usage and limits",
	RunE:  runUsage,
}

func runUsage(cmd *cobra.Command, _ []string) error {
	client, err := newTranslator()
	if err != nil {
		return err
	}
	defer client.Close()

	res, err := client.GetUsage(cmd.Context())
	if err != nil {
		return err
	}

	if usageJSON {
		return printJSON(os.Stdout, res)
	}

	fmt.Printf("Characters: %d / %d\n", res.CharacterCount, res.CharacterLimit)
	if res.DocumentCount != nil && res.DocumentLimit != nil {
		fmt.Printf("Documents:  %d / %d\n", *res.DocumentCount, *res.DocumentLimit)
	}
	if res.TeamDocumentCount != nil && res.TeamDocumentLimit != nil {
		fmt.Printf("Team docs:  %d / %d\n", *res.TeamDocumentCount, *res.TeamDocumentLimit)
	}
	return nil
}

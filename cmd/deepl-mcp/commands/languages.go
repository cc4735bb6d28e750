package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	languagesType string
	languagesJSON bool
)

func init() {
	languagesCmd.Flags().StringVar(&languagesType, "type", "target",
		"language direction: source or target")
	languagesCmd.Flags().BoolVar(&languagesJSON, "json", false,
		"output as JSON")
	rootCmd.AddCommand(languagesCmd)
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Long: `List the languages DeepL supports for the given direction.

Target-language entries show whether the formality option is supported;
source-language entries do not carry that information.`,
	RunE: runLanguages,
}

func runLanguages(cmd *cobra.Command, _ []string) error {
	client, err := newTranslator()
	if err != nil {
		return err
	}
	defer client.Close()

	res, err := client.ListLanguages(cmd.Context(), languagesType)
	if err != nil {
		return err
	}

	if languagesJSON {
		return printJSON(os.Stdout, res)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tFORMALITY")
	for _, lang := range res.Languages {
		formality := "-"
		if lang.SupportsFormality != nil {
			formality = fmt.Sprintf("%v", *lang.SupportsFormality)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", lang.Code, lang.Name, formality)
	}
	return w.Flush()
}

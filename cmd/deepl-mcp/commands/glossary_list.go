package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var glossaryListJSON bool

func init() {
	glossaryListCmd.Flags().BoolVar(&glossaryListJSON, "json", false, "output as JSON")
	glossaryCmd.AddCommand(glossaryListCmd)
}

var glossaryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all glossaries",
	RunE:  runGlossaryList,
}

func runGlossaryList(cmd *cobra.Command, _ []string) error {
	client, err := newTranslator()
	if err != nil {
		return err
	}
	defer client.Close()

	res, err := client.ListGlossaries(cmd.Context())
	if err != nil {
		return err
	}

	if glossaryListJSON {
		return printJSON(os.Stdout, res)
	}

	if len(res.Glossaries) == 0 {
		fmt.Println("No glossaries found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPAIR\tENTRIES\tREADY")
	for _, g := range res.Glossaries {
		fmt.Fprintf(w, "%s\t%s\t%s→%s\t%d\t%v\n",
			g.GlossaryID, truncate(g.Name, 30), g.SourceLang, g.TargetLang, g.EntryCount, g.Ready)
	}
	return w.Flush()
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/translatekit/deepl-mcp/internal/errors"
	"github.com/translatekit/deepl-mcp/pkg/fileutil"
)

var (
	glossaryCreateName    string
	glossaryCreateFrom    string
	glossaryCreateTo      string
	glossaryCreateEntries string
	glossaryCreateJSON    bool
)

func init() {
	glossaryCreateCmd.Flags().StringVar(&glossaryCreateName, "name", "",
		"glossary name (required)")
	glossaryCreateCmd.Flags().StringVar(&glossaryCreateFrom, "from", "",
		"source language code (required)")
	glossaryCreateCmd.Flags().StringVar(&glossaryCreateTo, "to", "",
		"target language code (required)")
	glossaryCreateCmd.Flags().StringVarP(&glossaryCreateEntries, "entries", "f", "",
		"entries file: .tsv, .toml or .yaml")
	glossaryCreateCmd.Flags().BoolVar(&glossaryCreateJSON, "json", false,
		"output as JSON")
	_ = glossaryCreateCmd.MarkFlagRequired("name")
	_ = glossaryCreateCmd.MarkFlagRequired("from")
	_ = glossaryCreateCmd.MarkFlagRequired("to")
	glossaryCmd.AddCommand(glossaryCreateCmd)
}

var glossaryCreateCmd = &cobra.Command{
	Use:   "create [source=target]...",
	Short: "Create a glossary",
	Long: `Create a glossary from term pairs.

Pairs come from an entries file (--entries) or from source=target
arguments. Supported file formats, by extension:

  .tsv          one pair per line, source and target separated by a tab
  .toml         a table of source = "target" keys
  .yaml / .yml  a mapping of source: target keys`,
	Example: `  # Inline pairs
  deepl-mcp glossary create --name tech --from en --to de hello=Hallo world=Welt

  # From a TSV file
  deepl-mcp glossary create --name tech --from en --to de -f terms.tsv`,
	RunE: runGlossaryCreate,
}

func runGlossaryCreate(cmd *cobra.Command, args []string) error {
	entries := make(map[string]string)

	if glossaryCreateEntries != "" {
		fileEntries, err := parseEntriesFile(glossaryCreateEntries)
		if err != nil {
			return err
		}
		entries = fileEntries
	}

	for _, arg := range args {
		source, target, ok := strings.Cut(arg, "=")
		if !ok || source == "" || target == "" {
			return errors.NewUserError(
				errors.Wrapf(errors.ErrInvalidEntriesFile, "malformed pair %q", arg),
				"Pass pairs as source=target")
		}
		entries[source] = target
	}

	if len(entries) == 0 {
		return errors.NewUserError(nil, "at least one entry is required: pass source=target pairs or --entries")
	}

	client, err := newTranslator()
	if err != nil {
		return err
	}
	defer client.Close()

	res, err := client.CreateGlossary(cmd.Context(), glossaryCreateName,
		glossaryCreateFrom, glossaryCreateTo, entries)
	if err != nil {
		return err
	}

	if glossaryCreateJSON {
		return printJSON(os.Stdout, res)
	}

	fmt.Printf("Created glossary %q (%s→%s) with %d entries\n",
		res.Name, res.SourceLang, res.TargetLang, res.EntryCount)
	fmt.Printf("ID: %s\n", res.GlossaryID)
	if !res.Ready {
		fmt.Println("The glossary is still processing; check 'deepl-mcp glossary show' before using it.")
	}
	return nil
}

// parseEntriesFile loads term pairs from a TSV, TOML or YAML file.
func parseEntriesFile(path string) (map[string]string, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]string)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &entries); err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidEntriesFile, "parsing %s: %v", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidEntriesFile, "parsing %s: %v", path, err)
		}
	case ".tsv", ".txt":
		for i, line := range strings.Split(string(data), "\n") {
			line = strings.TrimRight(line, "\r")
			if line == "" {
				continue
			}
			source, target, ok := strings.Cut(line, "\t")
			if !ok || source == "" || target == "" {
				return nil, errors.Wrapf(errors.ErrInvalidEntriesFile,
					"%s line %d: expected source<TAB>target", path, i+1)
			}
			entries[source] = target
		}
	default:
		return nil, errors.Wrapf(errors.ErrInvalidEntriesFile,
			"unsupported entries format %q (use .tsv, .toml or .yaml)", filepath.Ext(path))
	}

	if len(entries) == 0 {
		return nil, errors.Wrapf(errors.ErrInvalidEntriesFile, "%s contains no entries", path)
	}
	return entries, nil
}

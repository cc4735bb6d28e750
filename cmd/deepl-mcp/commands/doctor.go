package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/translatekit/deepl-mcp/internal/deepl"
	"github.com/translatekit/deepl-mcp/internal/doctor"
	"github.com/translatekit/deepl-mcp/internal/errors"
	"github.com/translatekit/deepl-mcp/internal/translator"
)

var (
	doctorJSON    bool
	doctorQuiet   bool
	doctorVerbose bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorQuiet, "quiet", false,
		"suppress output, exit code only")
	doctorCmd.Flags().BoolVar(&doctorVerbose, "verbose", false,
		"show detailed check-by-check output")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration and connectivity issues",
	Long: `Run diagnostic checks on the deepl-mcp configuration.

Verifies an API key is configured, validates any endpoint override, and
confirms the DeepL API is reachable with the configured credential.

Output modes (mutually exclusive):
  (default)   Show errors and warnings
  --verbose   Show all checks including passed ones
  --quiet     No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	PreRunE: validateDoctorFlags,
	RunE:    runDoctor,
}

// validateDoctorFlags ensures output flags are mutually exclusive.
func validateDoctorFlags(_ *cobra.Command, _ []string) error {
	count := 0
	if doctorJSON {
		count++
	}
	if doctorQuiet {
		count++
	}
	if doctorVerbose {
		count++
	}

	if count > 1 {
		return errors.New("flags --json, --quiet, and --verbose are mutually exclusive")
	}

	return nil
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	runner := doctor.NewRunner()
	runner.AddCheck(&doctor.CredentialCheck{APIKey: cfg.APIKey})
	runner.AddCheck(&doctor.ServerURLCheck{APIKey: cfg.APIKey, ServerURL: cfg.ServerURL})

	var client *translator.Client
	if cfg.APIKey != "" {
		var opts []deepl.Option
		if cfg.ServerURL != "" {
			opts = append(opts, deepl.WithServerURL(cfg.ServerURL))
		}
		c, err := translator.NewFromKey(cfg.APIKey, opts...)
		if err == nil {
			client = c
			defer c.Close()
		}
	}
	runner.AddCheck(&doctor.ConnectivityCheck{Client: client})

	report := runner.Run(cmd.Context())

	if err := outputDoctorReport(report); err != nil {
		return err
	}

	if report.HasErrors() {
		return errors.NewExitError(errors.New("errors found"), errors.ExitSystem)
	}
	if report.HasWarnings() {
		return errors.NewExitError(errors.New("warnings found"), errors.ExitUser)
	}
	return nil
}

func outputDoctorReport(report *doctor.Report) error {
	if doctorQuiet {
		return nil
	}

	if doctorJSON {
		return printJSON(os.Stdout, report)
	}

	return outputDoctorText(report)
}

func outputDoctorText(report *doctor.Report) error {
	// In normal mode, show only errors and warnings
	// In verbose mode, show all checks
	showAll := doctorVerbose

	hasOutput := false
	for _, result := range report.Results {
		if !showAll && result.Status != doctor.SeverityError && result.Status != doctor.SeverityWarning {
			continue
		}

		hasOutput = true
		icon := statusIcon(result.Status)
		fmt.Printf("%s [%s] %s: %s\n", icon, result.Category, result.Name, result.Message)

		if result.FixHint != "" && (result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning) {
			fmt.Printf("  hint: %s\n", result.FixHint)
		}
	}

	if hasOutput || showAll {
		fmt.Println()
	}

	fmt.Printf("Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)

	return nil
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return "✓"
	case doctor.SeverityInfo:
		return "ℹ"
	case doctor.SeverityWarning:
		return "⚠"
	case doctor.SeverityError:
		return "✗"
	default:
		return "?"
	}
}

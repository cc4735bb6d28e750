package commands

import (
	"encoding/json"
	"io"

	"github.com/translatekit/deepl-mcp/internal/deepl"
	"github.com/translatekit/deepl-mcp/internal/errors"
	"github.com/translatekit/deepl-mcp/internal/translator"
)

// newTranslator builds a translator client from the loaded configuration.
// Callers own the returned client and must Close it.
func newTranslator() (*translator.Client, error) {
	var opts []deepl.Option
	if cfg != nil && cfg.ServerURL != "" {
		opts = append(opts, deepl.WithServerURL(cfg.ServerURL))
	}

	apiKey := ""
	if cfg != nil {
		apiKey = cfg.APIKey
	}

	c, err := translator.NewFromKey(apiKey, opts...)
	if err != nil {
		return nil, errors.NewConfigError(err)
	}
	return c, nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encoding JSON")
	}
	return nil
}

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

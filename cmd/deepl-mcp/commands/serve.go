package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/translatekit/deepl-mcp/internal/logging"
	"github.com/translatekit/deepl-mcp/internal/server"
)

var (
	serveHTTP bool
	serveAddr string
)

func init() {
	serveCmd.Flags().BoolVar(&serveHTTP, "http", false,
		"serve over streamable HTTP instead of stdio")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "",
		"HTTP listen address (default from config, 127.0.0.1:8000)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP tool server",
	Long: `Start the MCP server exposing DeepL tools to MCP clients.

By default the server speaks MCP over stdio, for use as a subprocess of
an MCP client. With --http it serves the streamable HTTP transport on
/mcp plus a GET /health endpoint.

The API key is not required at startup: the DeepL client is created on
first tool use, and a missing key surfaces as a tool error telling the
caller to set DEEPL_API_KEY.`,
	Example: `  # stdio transport (for MCP client configs)
  deepl-mcp serve

  # HTTP transport
  deepl-mcp serve --http --addr 127.0.0.1:8000`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logging.FromContext(ctx))

	if serveHTTP {
		addr := serveAddr
		if addr == "" {
			addr = cfg.HTTPAddr
		}
		return srv.ServeHTTP(ctx, addr)
	}
	return srv.Run(ctx)
}

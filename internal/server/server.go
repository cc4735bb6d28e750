package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/translatekit/deepl-mcp/internal/config"
	"github.com/translatekit/deepl-mcp/internal/deepl"
	"github.com/translatekit/deepl-mcp/internal/translator"
)

// Name identifies this server to MCP clients.
const Name = "deepl-mcp"

const instructions = `DeepL translation tools. Use translate_text for plain
translation, translate_with_glossary when a glossary id should constrain
terminology, and the document tools for file translation. Read the
skill://deepl/SKILL.md resource for usage guidance.`

// Server hosts the DeepL tool set on an MCP server.
//
// The underlying translator client is created on first tool use. If no API
// key is configured, that first use fails with a configuration error and
// every later use fails the same way; the process must be restarted with a
// credential.
type Server struct {
	cfg *config.Config
	log *slog.Logger
	mcp *mcp.Server

	once    sync.Once
	client  *translator.Client
	initErr error
}

// New creates the MCP server with all tools and resources registered.
func New(cfg *config.Config, log *slog.Logger) *Server {
	s := &Server{
		cfg: cfg,
		log: log,
		mcp: mcp.NewServer(
			&mcp.Implementation{Name: Name, Version: deepl.Version},
			&mcp.ServerOptions{Instructions: instructions},
		),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// translator returns the shared capability handle, constructing it on first
// call. Construction performs no network I/O; it only validates that an
// auth key is configured.
func (s *Server) translator() (*translator.Client, error) {
	s.once.Do(func() {
		var opts []deepl.Option
		if s.cfg.ServerURL != "" {
			opts = append(opts, deepl.WithServerURL(s.cfg.ServerURL))
		}
		s.client, s.initErr = translator.NewFromKey(s.cfg.APIKey, opts...)
		if s.initErr == nil {
			s.log.Debug("translator client initialized", "server_url", s.client.ServerURL())
		}
	})
	return s.client, s.initErr
}

// Run serves MCP over stdio until ctx is canceled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info("starting MCP server", "transport", "stdio")
	defer s.Close()
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// Close releases the capability handle's network resources, if it was ever
// constructed.
func (s *Server) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// toolError logs a failed tool call and passes the failure through so the
// MCP layer reports a tool error instead of a degraded success.
func (s *Server) toolError(tool string, err error) error {
	s.log.Error("tool call failed", "tool", tool, "error", err)
	return err
}

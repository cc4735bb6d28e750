package server

import (
	"bytes"
	"context"
	_ "embed"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/translatekit/deepl-mcp/pkg/frontmatter"
)

//go:embed SKILL.md
var skillMarkdown []byte

// skillURI is the resource URI MCP clients read for usage guidance.
const skillURI = "skill://deepl/SKILL.md"

type skillMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

func (s *Server) registerResources() {
	var meta skillMeta
	if _, err := frontmatter.MustParse(bytes.NewReader(skillMarkdown), &meta); err != nil {
		// The skill document is compiled in; a bad header is a packaging
		// bug, not a runtime condition.
		panic(err)
	}

	s.mcp.AddResource(&mcp.Resource{
		URI:         skillURI,
		Name:        meta.Name,
		Description: meta.Description,
		MIMEType:    "text/markdown",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      skillURI,
				MIMEType: "text/markdown",
				Text:     string(skillMarkdown),
			}},
		}, nil
	})
}

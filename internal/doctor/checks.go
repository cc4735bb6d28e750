package doctor

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/translatekit/deepl-mcp/internal/deepl"
	"github.com/translatekit/deepl-mcp/internal/redact"
	"github.com/translatekit/deepl-mcp/internal/translator"
)

// CredentialCheck verifies an API auth key is configured and reports which
// account plan it belongs to.
type CredentialCheck struct {
	APIKey string
}

// Name returns the check identifier.
func (c *CredentialCheck) Name() string { return "api-key" }

// Category returns the check grouping.
func (c *CredentialCheck) Category() string { return "config" }

// Run executes the check.
func (c *CredentialCheck) Run(ctx context.Context) *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	key := strings.TrimSpace(c.APIKey)
	if key == "" {
		result.Status = SeverityError
		result.Message = "no API key configured"
		result.FixHint = "Set DEEPL_API_KEY in the environment or a .env file"
		return result
	}

	plan := "pro"
	if deepl.IsFreeAccountAuthKey(key) {
		plan = "free"
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("API key configured (%s)", redact.MaskValue(key))
	result.Details = map[string]any{"plan": plan}
	return result
}

// ServerURLCheck validates an endpoint override and warns when it
// contradicts the plan implied by the auth key.
type ServerURLCheck struct {
	APIKey    string
	ServerURL string
}

// Name returns the check identifier.
func (c *ServerURLCheck) Name() string { return "server-url" }

// Category returns the check grouping.
func (c *ServerURLCheck) Category() string { return "config" }

// Run executes the check.
func (c *ServerURLCheck) Run(ctx context.Context) *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	if c.ServerURL == "" {
		result.Status = SeverityInfo
		result.Message = "endpoint derived from auth key"
		return result
	}

	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("server_url %q is not an absolute URL", c.ServerURL)
		result.FixHint = "Use a full URL like https://api.deepl.com"
		return result
	}

	free := deepl.IsFreeAccountAuthKey(c.APIKey)
	if free && strings.Contains(u.Host, "api.deepl.com") {
		result.Status = SeverityWarning
		result.Message = "free-plan auth key pointed at the pro endpoint"
		result.FixHint = "Free keys (ending in :fx) use https://api-free.deepl.com"
		return result
	}
	if !free && strings.Contains(u.Host, "api-free.deepl.com") {
		result.Status = SeverityWarning
		result.Message = "pro auth key pointed at the free endpoint"
		result.FixHint = "Pro keys use https://api.deepl.com"
		return result
	}

	result.Status = SeverityPass
	result.Message = "endpoint override looks valid"
	result.Details = map[string]any{"server_url": c.ServerURL}
	return result
}

// ConnectivityCheck verifies the API is reachable with the configured
// credential by requesting account usage.
type ConnectivityCheck struct {
	Client *translator.Client
}

// Name returns the check identifier.
func (c *ConnectivityCheck) Name() string { return "connectivity" }

// Category returns the check grouping.
func (c *ConnectivityCheck) Category() string { return "api" }

// Run executes the check.
func (c *ConnectivityCheck) Run(ctx context.Context) *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	if c.Client == nil {
		result.Status = SeverityInfo
		result.Message = "skipped: no API key configured"
		return result
	}

	usage, err := c.Client.GetUsage(ctx)
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("API unreachable: %v", err)
		result.FixHint = "Verify the API key and network connectivity"
		return result
	}

	result.Status = SeverityPass
	result.Message = "API reachable"
	result.Details = map[string]any{
		"endpoint":        c.Client.ServerURL(),
		"character_count": usage.CharacterCount,
		"character_limit": usage.CharacterLimit,
	}
	return result
}

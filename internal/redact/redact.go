// Package redact masks secret values before they reach logs or terminal output.
package redact

import "strings"

// SecretKeyPatterns contains substrings that indicate a key likely contains
// sensitive data. Keys are matched case-insensitively.
var SecretKeyPatterns = []string{
	"TOKEN",
	"KEY",
	"SECRET",
	"PASSWORD",
	"AUTH",
	"CREDENTIAL",
	"API_KEY",
	"PRIVATE",
}

// TokenPrefixes contains known API token prefixes that indicate sensitive
// values regardless of key name.
var TokenPrefixes = []string{
	"sk-",  // OpenAI/Anthropic keys
	"ghp_", // GitHub personal access token
	"AKIA", // AWS access key prefix
}

// ShouldMask returns true if the key name suggests the value is sensitive.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range SecretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// ContainsTokenPrefix returns true if the value starts with a known token
// prefix, or looks like a DeepL auth key (free-plan keys end in ":fx").
func ContainsTokenPrefix(value string) bool {
	for _, prefix := range TokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return strings.HasSuffix(value, ":fx")
}

// MaskValue masks a potentially sensitive string value.
// Values with 4 or fewer characters are fully masked as "********".
// Longer values show the last 4 characters: "****xxxx".
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}

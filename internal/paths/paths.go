// Package paths resolves filesystem locations used by deepl-mcp.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/translatekit/deepl-mcp/internal/errors"
)

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory, or an empty string if it cannot
// be determined. Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the directory searched for the deepl-mcp config file.
// Returns: <ConfigHome>/deepl-mcp/
func ConfigDir() string {
	return filepath.Join(ConfigHome(), "deepl-mcp")
}

// CacheHome returns the XDG cache home directory.
func CacheHome() string {
	return xdg.CacheHome
}

// DownloadDir returns the default directory for translated document
// downloads when the caller does not supply an output path.
// Returns: <CacheHome>/deepl-mcp/downloads/
func DownloadDir() string {
	return filepath.Join(CacheHome(), "deepl-mcp", "downloads")
}

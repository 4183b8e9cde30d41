package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is used for ocfg's own config and cache directories.
const AppName = "ocfg"

// Logical config names. These appear as the name field of backup archive
// filenames and in CLI output.
const (
	NameOpenCode     = "opencode"
	NameOhMyOpenCode = "oh-my-opencode"
)

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrInvalidPath indicates the provided path is malformed or invalid.
	ErrInvalidPath = errors.New("invalid path")
)

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

// Home returns the user's home directory.
// Note: It returns an empty string on error.
// Use ResolveHome for proper error handling.
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

// AppConfigDir returns the directory holding ocfg's own configuration.
// Returns: <ConfigHome>/ocfg/
func AppConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// OpenCodeDir returns the OpenCode configuration directory.
// Returns: <home>/.config/opencode/
//
// OpenCode uses ~/.config regardless of platform, so this deliberately does
// not go through xdg.ConfigHome (which differs on macOS and Windows).
func OpenCodeDir() string {
	home := Home()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "opencode")
}

// OpenCodeConfig returns the path of the main OpenCode config file.
// Returns: <home>/.config/opencode/opencode.json
func OpenCodeConfig() string {
	dir := OpenCodeDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "opencode.json")
}

// OhMyOpenCodeConfig returns the path of the companion add-on config file.
// Returns: <home>/.config/opencode/oh-my-opencode.json
func OhMyOpenCodeConfig() string {
	dir := OpenCodeDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "oh-my-opencode.json")
}

// BackupDir returns the default backup root directory.
// Returns: <home>/.config/opencode/backups/
func BackupDir() string {
	dir := OpenCodeDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "backups")
}

// ClaudeSettings returns the path of Claude Code's settings file.
// Returns: <home>/.claude/settings.json
func ClaudeSettings() string {
	home := Home()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".claude", "settings.json")
}

// ClaudeProviders returns the path of Claude Code's providers file.
// Returns: <home>/.claude/providers.json
func ClaudeProviders() string {
	home := Home()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".claude", "providers.json")
}

// CodexConfig returns the path of Codex's TOML config file.
// Returns: <home>/.codex/config.toml
func CodexConfig() string {
	home := Home()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".codex", "config.toml")
}

// GeminiConfig returns the path of Gemini's config file.
// Returns: <home>/.config/gemini/config.json
func GeminiConfig() string {
	home := Home()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "gemini", "config.json")
}

// CCSwitchConfig returns the path of cc-switch's config file.
// Returns: <home>/.cc-switch/config.json
func CCSwitchConfig() string {
	home := Home()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".cc-switch", "config.json")
}

// TargetConfig resolves a logical config name to its live file path.
// Returns an empty string for unknown names.
func TargetConfig(name string) string {
	switch name {
	case NameOpenCode:
		return OpenCodeConfig()
	case NameOhMyOpenCode:
		return OhMyOpenCodeConfig()
	default:
		return ""
	}
}

// TargetNames returns the logical names of the managed config files.
func TargetNames() []string {
	return []string{NameOpenCode, NameOhMyOpenCode}
}

// Package backup provides CLI commands for managing configuration backups.
package backup

import (
	"github.com/spf13/cobra"

	"github.com/oc-tools/ocfg/internal/backup"
	"github.com/oc-tools/ocfg/internal/config"
	"github.com/oc-tools/ocfg/internal/errors"
)

// Color constants for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// Cmd is the root backup command.
var Cmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage configuration backups",
	Long: `Manage timestamped backups of the OpenCode configuration files.

Backups are flat files under ~/.config/opencode/backups/, named
<config>.<timestamp>.<tag>.bak so every record is recovered from the
filename alone. ocfg also creates backups automatically (tag "auto")
before it writes a config, and a "pre-restore" safety backup before a
restore overwrites anything.`,
	Example: `  # Back up both managed configs
  ocfg backup create

  # Back up one file with a tag
  ocfg backup create --tag before-upgrade ~/.config/opencode/opencode.json

  # List archives
  ocfg backup list

  # Pick an archive interactively and restore it
  ocfg backup restore

  # Remove old archives, keeping the 5 most recent per config
  ocfg backup prune

  See Also:
    ocfg backup list    - List archives
    ocfg backup restore - Restore from an archive
    ocfg backup delete  - Delete archives
    ocfg backup prune   - Remove old archives`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// newManager builds a Manager honoring the backup_dir config override.
func newManager() (*backup.Manager, *config.Config, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, nil, errors.Wrap(err, "loading config")
	}
	return backup.NewManager(backup.WithBackupDir(cfg.BackupDir)), cfg, nil
}

// Package imports provides CLI commands for importing foreign tool
// configuration into OpenCode's config files.
package imports

import "github.com/spf13/cobra"

// Color constants for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// Cmd is the root import command.
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import configuration from sibling tools",
	Long: `Import configuration from sibling AI tools (Claude Code, Codex,
Gemini, cc-switch) into OpenCode's config.

Importing is a two-step flow: scan shows what exists and what it contains,
apply converts one source into OpenCode's schema and merges it into the
live config. Apply never silently overwrites an existing value: every
collision is either skipped, confirmed interactively, or forced with
--on-conflict overwrite.`,
	Example: `  # See which foreign configs exist
  ocfg import scan

  # Merge Claude Code settings into opencode.json
  ocfg import apply claude

  # Preview without writing
  ocfg import apply codex --dry-run

  See Also:
    ocfg import scan  - Probe the known foreign config locations
    ocfg import apply - Convert and merge one source`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

package backup

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/oc-tools/ocfg/internal/backup"
	"github.com/oc-tools/ocfg/internal/errors"
)

var pruneKeep int

func init() {
	pruneCmd.Flags().IntVar(&pruneKeep, "keep", -1,
		"Number of archives to retain per config (default from config, 5)")
	Cmd.AddCommand(pruneCmd)
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove old archives",
	Long: `Remove old archives beyond the retention count.

Retention is applied per logical config name: with --keep 5, the 5 most
recent archives of opencode.json AND the 5 most recent of
oh-my-opencode.json are kept.`,
	Example: `  # Keep the default number of archives per config
  ocfg backup prune

  # Keep only the 3 most recent per config
  ocfg backup prune --keep 3

  # Remove everything
  ocfg backup prune --keep 0

  See Also:
    ocfg backup list - List archives`,
	RunE: runPrune,
}

func runPrune(_ *cobra.Command, _ []string) error {
	return runPruneWithWriter(os.Stdout)
}

func runPruneWithWriter(w io.Writer) error {
	mgr, cfg, err := newManager()
	if err != nil {
		return err
	}

	keep := pruneKeep
	if keep < 0 {
		keep = cfg.RetentionCount
	}
	if keep < 0 {
		keep = backup.DefaultRetentionCount
	}

	removed, err := mgr.Prune(keep)
	if err != nil {
		return errors.Wrap(err, "pruning backups")
	}

	if removed == 0 {
		fmt.Fprintln(w, "No backups to prune")
		return nil
	}
	fmt.Fprintf(w, "%s✓ removed %d old archive(s)%s\n", colorGreen, removed, colorReset)
	return nil
}

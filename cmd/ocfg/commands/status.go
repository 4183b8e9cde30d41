package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/oc-tools/ocfg/internal/backup"
	"github.com/oc-tools/ocfg/internal/config"
	"github.com/oc-tools/ocfg/internal/errors"
	"github.com/oc-tools/ocfg/internal/importer"
	"github.com/oc-tools/ocfg/internal/paths"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show managed config files and import sources",
	Long: `Show the paths of the managed OpenCode config files, the foreign
configs eligible for import, and the backup root, each with whether the
file currently exists.`,
	Example: `  # Show everything ocfg knows about
  ocfg status

  See Also: ocfg doctor, ocfg import scan`,
	RunE: runStatus,
}

func runStatus(_ *cobra.Command, _ []string) error {
	return runStatusWithWriter(os.Stdout)
}

func runStatusWithWriter(w io.Writer) error {
	cfg, err := config.Load("")
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	fmt.Fprintf(w, "%sManaged configs%s\n", colorCyan+colorBold, colorReset)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, name := range paths.TargetNames() {
		path := paths.TargetConfig(name)
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", name, path, existsLabel(path))
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%sImport sources%s\n", colorCyan+colorBold, colorReset)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, loc := range importer.DefaultLocations() {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", loc.Name, loc.Path, existsLabel(loc.Path))
	}
	tw.Flush()

	mgr := backup.NewManager(backup.WithBackupDir(cfg.BackupDir))
	records, err := mgr.List()
	if err != nil {
		return errors.Wrap(err, "listing backups")
	}
	fmt.Fprintf(w, "\n%sBackups%s\n", colorCyan+colorBold, colorReset)
	fmt.Fprintf(w, "  %s (%d archives)\n", mgr.Root(), len(records))

	return nil
}

func existsLabel(path string) string {
	if path == "" {
		return colorYellow + "unresolved" + colorReset
	}
	if _, err := os.Stat(path); err != nil {
		return colorGray + "not found" + colorReset
	}
	return colorGreen + "present" + colorReset
}

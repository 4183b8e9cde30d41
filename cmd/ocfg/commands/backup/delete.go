package backup

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/oc-tools/ocfg/internal/errors"
)

func init() {
	Cmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete ARCHIVE...",
	Short: "Delete archives",
	Long: `Delete backup archives.

Deleting an archive that no longer exists is reported as a failure, not
ignored, so you know the file was not there to remove.`,
	Example: `  # Delete one archive
  ocfg backup delete ~/.config/opencode/backups/opencode.20260825_101500.manual.bak

  # Bare filenames resolve against the backup root
  ocfg backup delete opencode.20260825_101500.manual.bak

  See Also:
    ocfg backup list  - List archives
    ocfg backup prune - Remove old archives by retention count`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDelete,
}

func runDelete(_ *cobra.Command, args []string) error {
	return runDeleteWithWriter(os.Stdout, args)
}

func runDeleteWithWriter(w io.Writer, args []string) error {
	mgr, _, err := newManager()
	if err != nil {
		return err
	}

	var failed error
	for _, arg := range args {
		rec, err := resolveArchive(mgr, arg)
		if err != nil {
			fmt.Fprintf(w, "%s✗ %s: not found%s\n", colorYellow, arg, colorReset)
			failed = errors.ErrArchiveMissing
			continue
		}
		if err := mgr.Delete(rec.Path); err != nil {
			if errors.Is(err, errors.ErrArchiveMissing) {
				fmt.Fprintf(w, "%s✗ %s: already gone%s\n", colorYellow, rec.Path, colorReset)
				failed = err
				continue
			}
			return errors.Wrapf(err, "deleting %s", rec.Path)
		}
		fmt.Fprintf(w, "%s✓ deleted %s%s\n", colorGreen, rec.Display(), colorReset)
	}

	if failed != nil {
		return errors.NewUserError(failed, "Run 'ocfg backup list' to see available archives")
	}
	return nil
}

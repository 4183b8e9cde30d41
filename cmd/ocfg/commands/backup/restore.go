package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/oc-tools/ocfg/internal/backup"
	"github.com/oc-tools/ocfg/internal/errors"
	"github.com/oc-tools/ocfg/internal/logging"
	"github.com/oc-tools/ocfg/internal/paths"
)

var restoreTarget string

func init() {
	restoreCmd.Flags().StringVar(&restoreTarget, "target", "",
		"restore to this path instead of the archive's own config file")
	Cmd.AddCommand(restoreCmd)
}

var restoreCmd = &cobra.Command{
	Use:   "restore [ARCHIVE]",
	Short: "Restore a config file from an archive",
	Long: `Copy an archive's bytes back over the live config file it was taken
from (or over --target). Whatever currently exists at the destination is
snapshotted first under the "pre-restore" tag, so a restore is always
reversible.

Without an ARCHIVE argument, and when run on a terminal, an interactive
picker is shown.`,
	Example: `  # Pick an archive interactively
  ocfg backup restore

  # Restore a specific archive
  ocfg backup restore ~/.config/opencode/backups/opencode.20260825_101500.manual.bak

  # Restore to a different location
  ocfg backup restore opencode.20260825_101500.manual.bak --target /tmp/opencode.json

  See Also:
    ocfg backup list - List archives`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRestore,
}

func runRestore(_ *cobra.Command, args []string) error {
	return runRestoreWithWriter(os.Stdout, args)
}

func runRestoreWithWriter(w io.Writer, args []string) error {
	mgr, _, err := newManager()
	if err != nil {
		return err
	}

	var rec backup.Record
	if len(args) == 1 {
		rec, err = resolveArchive(mgr, args[0])
	} else {
		rec, err = pickArchive(mgr)
	}
	if err != nil {
		return err
	}

	target := restoreTarget
	if target == "" {
		target = paths.TargetConfig(rec.Name)
		if target == "" {
			return errors.NewUserError(
				errors.Newf("archive %q is not from a managed config", rec.Name),
				"Pass --target to choose where to restore it")
		}
	}

	if err := mgr.Restore(rec.Path, target); err != nil {
		if errors.Is(err, errors.ErrArchiveMissing) {
			return errors.NewUserError(err, "The archive was removed; run 'ocfg backup list'")
		}
		return errors.Wrapf(err, "restoring %s", rec.Path)
	}

	fmt.Fprintf(w, "%s✓ restored %s → %s%s\n", colorGreen, rec.Display(), target, colorReset)
	return nil
}

// resolveArchive accepts either a full archive path or a bare archive
// filename relative to the backup root.
func resolveArchive(mgr *backup.Manager, arg string) (backup.Record, error) {
	records, err := mgr.List()
	if err != nil {
		return backup.Record{}, errors.Wrap(err, "listing backups")
	}
	for _, rec := range records {
		if rec.Path == arg || rec.Path == absOrSelf(arg) {
			return rec, nil
		}
		if filepath.Base(rec.Path) == arg {
			return rec, nil
		}
	}
	return backup.Record{}, errors.NewUserError(
		errors.Wrapf(errors.ErrArchiveMissing, "%s", arg),
		"Run 'ocfg backup list' to see available archives")
}

func absOrSelf(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// pickArchive shows an interactive fuzzy picker over all archives.
func pickArchive(mgr *backup.Manager) (backup.Record, error) {
	if !logging.IsTTY(os.Stdout) {
		return backup.Record{}, errors.NewUserError(
			errors.New("no archive specified"),
			"Pass an archive path, or run interactively on a terminal")
	}

	records, err := mgr.List()
	if err != nil {
		return backup.Record{}, errors.Wrap(err, "listing backups")
	}
	if len(records) == 0 {
		return backup.Record{}, errors.NewUserError(
			errors.New("no backups available"),
			"Create one with 'ocfg backup create'")
	}

	idx, err := fuzzyfinder.Find(
		records,
		func(i int) string {
			return records[i].Display()
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			rec := records[i]
			return fmt.Sprintf("Name: %s\nCreated: %s\nTag: %s\n\nArchive:\n%s",
				rec.Name,
				rec.CreatedAt.Format("2006-01-02 15:04:05"),
				rec.Tag,
				rec.Path)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return backup.Record{}, errors.NewUserError(errors.New("restore cancelled"), "")
		}
		return backup.Record{}, errors.Wrap(err, "interactive selection failed")
	}

	return records[idx], nil
}

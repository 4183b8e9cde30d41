package backup

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/oc-tools/ocfg/internal/backup"
	"github.com/oc-tools/ocfg/internal/errors"
	"github.com/oc-tools/ocfg/internal/paths"
)

var createTag string

func init() {
	createCmd.Flags().StringVar(&createTag, "tag", backup.TagManual,
		"free-text tag recorded in the archive name")
	Cmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create [PATH...]",
	Short: "Create a manual backup",
	Long: `Create a backup of configuration files.

Without arguments, backs up both managed configs (opencode.json and
oh-my-opencode.json); a managed config that does not exist yet is skipped
with a note. With explicit paths, every named file must exist.`,
	Example: `  # Back up both managed configs
  ocfg backup create

  # Back up a specific file, tagged
  ocfg backup create --tag before-upgrade ~/.config/opencode/opencode.json

  See Also:
    ocfg backup list    - List archives
    ocfg backup restore - Restore from an archive`,
	RunE: runCreate,
}

func runCreate(_ *cobra.Command, args []string) error {
	return runCreateWithWriter(os.Stdout, args)
}

func runCreateWithWriter(w io.Writer, args []string) error {
	mgr, _, err := newManager()
	if err != nil {
		return err
	}

	explicit := len(args) > 0
	sources := args
	if !explicit {
		for _, name := range paths.TargetNames() {
			sources = append(sources, paths.TargetConfig(name))
		}
	}

	created := 0
	for _, src := range sources {
		archive, err := mgr.Backup(src, createTag)
		if err != nil {
			if errors.Is(err, errors.ErrSourceMissing) && !explicit {
				fmt.Fprintf(w, "%s%s: not found, skipped%s\n", colorYellow, src, colorReset)
				continue
			}
			if errors.Is(err, errors.ErrSourceMissing) {
				return errors.NewUserError(err, "Check the path and try again")
			}
			return errors.Wrapf(err, "backing up %s", src)
		}
		fmt.Fprintf(w, "%s✓ %s → %s%s\n", colorGreen, src, archive, colorReset)
		created++
	}

	if created == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No backups created. Configurations may not exist yet.")
	}

	return nil
}

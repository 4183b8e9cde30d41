package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/oc-tools/ocfg/internal/config"
	"github.com/oc-tools/ocfg/internal/document"
	"github.com/oc-tools/ocfg/internal/errors"
	"github.com/oc-tools/ocfg/internal/importer"
	"github.com/oc-tools/ocfg/internal/paths"
	"github.com/oc-tools/ocfg/pkg/fileutil"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment for problems",
	Long: `Run environment checks: the home directory resolves, the managed
config files parse as JSON, the backup root is writable, and Codex's
config.toml parses under a real TOML parser.

The import scanner reads Codex config with a deliberately minimal TOML
reader (section headers and scalar assignments only). The doctor check
flags files where that reader would miss or mangle entries, without making
the import path any smarter.`,
	Example: `  # Check everything
  ocfg doctor

  See Also: ocfg status`,
	RunE: runDoctor,
}

func runDoctor(_ *cobra.Command, _ []string) error {
	return runDoctorWithWriter(os.Stdout)
}

func runDoctorWithWriter(w io.Writer) error {
	failures := 0

	// Home directory
	home, err := paths.ResolveHome()
	if err != nil {
		reportCheck(w, false, "home directory: %v", err)
		// Everything below depends on home; stop here.
		return errors.NewSystemError(errors.Newf("%d check(s) failed", 1), "Set HOME and retry")
	}
	reportCheck(w, true, "home directory: %s", home)

	// Managed config files parse
	for _, name := range paths.TargetNames() {
		path := paths.TargetConfig(name)
		if _, err := os.Stat(path); err != nil {
			reportCheck(w, true, "%s: not present yet (%s)", name, path)
			continue
		}
		if _, err := document.Load(path); err != nil {
			failures++
			reportCheck(w, false, "%s: present but unreadable: %v", name, errors.Unwrap(err))
			continue
		}
		reportCheck(w, true, "%s: parses", name)
	}

	// Backup root writable
	cfg, err := config.Load("")
	if err != nil {
		return errors.Wrap(err, "loading config")
	}
	if err := checkBackupRootWritable(cfg.BackupDir); err != nil {
		failures++
		reportCheck(w, false, "backup root %s: %v", cfg.BackupDir, err)
	} else {
		reportCheck(w, true, "backup root %s: writable", cfg.BackupDir)
	}

	// Codex TOML divergence
	if msg, ok := checkCodexTOML(paths.CodexConfig()); !ok {
		failures++
		reportCheck(w, false, "codex config: %s", msg)
	} else {
		reportCheck(w, true, "codex config: %s", msg)
	}

	if failures > 0 {
		return errors.NewSystemError(errors.Newf("%d check(s) failed", failures), "See the failing checks above")
	}
	fmt.Fprintln(w, "\nAll checks passed")
	return nil
}

func reportCheck(w io.Writer, ok bool, format string, args ...any) {
	mark := colorGreen + "✓" + colorReset
	if !ok {
		mark = colorRed + "✗" + colorReset
	}
	fmt.Fprintf(w, "%s %s\n", mark, fmt.Sprintf(format, args...))
}

// checkBackupRootWritable verifies the backup root can be created and
// written to, cleaning up the probe file afterwards.
func checkBackupRootWritable(root string) error {
	if err := paths.EnsureDir(root, 0o755); err != nil {
		return err
	}
	probe, err := os.CreateTemp(root, ".ocfg-doctor-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(name)
}

// checkCodexTOML parses Codex's config with a real TOML parser and reports
// where the minimal import reader would diverge.
func checkCodexTOML(path string) (string, bool) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if os.IsNotExist(errors.UnwrapAll(err)) {
			return fmt.Sprintf("not present (%s)", path), true
		}
		return err.Error(), false
	}

	var full map[string]any
	if err := toml.Unmarshal(data, &full); err != nil {
		return fmt.Sprintf("not valid TOML: %v", err), false
	}

	subset := importer.ParseTOMLSubset(data)
	var missed []string
	for key := range full {
		if !subset.Has(key) {
			missed = append(missed, key)
		}
	}
	if len(missed) > 0 {
		sort.Strings(missed)
		return fmt.Sprintf("valid TOML, but import's minimal reader would miss: %v", missed), false
	}

	return fmt.Sprintf("parses (%s)", filepath.Base(path)), true
}

package imports

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oc-tools/ocfg/internal/backup"
	"github.com/oc-tools/ocfg/internal/config"
	"github.com/oc-tools/ocfg/internal/document"
	"github.com/oc-tools/ocfg/internal/errors"
	"github.com/oc-tools/ocfg/internal/importer"
	"github.com/oc-tools/ocfg/internal/logging"
	"github.com/oc-tools/ocfg/internal/paths"
	"github.com/oc-tools/ocfg/internal/redact"
)

var (
	applyTarget     string
	applyOnConflict string
	applyDryRun     bool
)

func init() {
	applyCmd.Flags().StringVar(&applyTarget, "target", paths.NameOpenCode,
		"managed config to merge into (opencode, oh-my-opencode) or an explicit file path")
	applyCmd.Flags().StringVar(&applyOnConflict, "on-conflict", "ask",
		"what to do when a key already exists with a different value: ask, skip, overwrite")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false,
		"show what would change without writing anything")
	Cmd.AddCommand(applyCmd)
}

var applyCmd = &cobra.Command{
	Use:   "apply SOURCE",
	Short: "Convert and merge one source",
	Long: `Convert one foreign config into OpenCode's schema and merge the
result into a managed config file.

SOURCE is a source type as shown by 'ocfg import scan': claude,
claude_providers, codex, gemini, or ccswitch.

The merge is key-wise at the top level and inside the provider and
permission mappings. Keys that already hold an equal value are left
untouched. Keys that collide with a different value are resolved per
--on-conflict: ask prompts for each one (defaulting to keep the live
value), skip keeps every live value, overwrite takes every incoming one.

Before the target file is rewritten an automatic backup (tag "auto") is
taken, so an apply is always reversible with 'ocfg backup restore'.`,
	Example: `  # Merge Claude Code settings, prompting on collisions
  ocfg import apply claude

  # Take everything from cc-switch without prompting
  ocfg import apply ccswitch --on-conflict overwrite

  # Preview a Codex import
  ocfg import apply codex --dry-run

  See Also:
    ocfg import scan    - Probe the known foreign config locations
    ocfg backup restore - Undo an apply`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func runApply(_ *cobra.Command, args []string) error {
	return runApplyWithWriter(os.Stdout, os.Stdin, args[0])
}

func runApplyWithWriter(w io.Writer, in io.Reader, sourceType string) error {
	targetPath := paths.TargetConfig(applyTarget)
	if targetPath == "" {
		// Not a managed name; an explicit path is fine too.
		if strings.ContainsRune(applyTarget, os.PathSeparator) {
			targetPath = applyTarget
		} else {
			return errors.NewUserError(
				errors.Newf("unknown target %q", applyTarget),
				fmt.Sprintf("Use one of: %s, or pass a file path", strings.Join(paths.TargetNames(), ", ")))
		}
	}

	src, err := findSource(sourceType)
	if err != nil {
		return err
	}

	incoming, ok := importer.Convert(src.Type, src.Doc)
	if !ok {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrUnsupported, "source %s", src.Type),
			"The file's top level is not a mapping ocfg knows how to convert")
	}

	live, err := loadLive(targetPath)
	if err != nil {
		return err
	}

	decide, err := decideFunc(w, in)
	if err != nil {
		return err
	}

	merged, stats := importer.Merge(live, incoming, decide)

	if applyDryRun {
		fmt.Fprintf(w, "%sDry run:%s would merge %s into %s\n",
			colorBold, colorReset, src.Name, targetPath)
		printStats(w, stats)
		return nil
	}

	if stats.Added == 0 && stats.Overwritten == 0 {
		fmt.Fprintf(w, "%s already contains everything %s provides, nothing to do\n",
			applyTarget, src.Name)
		return nil
	}

	cfg, err := config.Load("")
	if err != nil {
		return errors.Wrap(err, "loading config")
	}
	mgr := backup.NewManager(backup.WithBackupDir(cfg.BackupDir))
	archive, err := mgr.Backup(targetPath, backup.TagAuto)
	switch {
	case errors.Is(err, errors.ErrSourceMissing):
		// Nothing to snapshot: the target does not exist yet.
	case err != nil:
		return errors.Wrap(err, "creating automatic backup")
	default:
		fmt.Fprintf(w, "%s✓ backed up %s%s\n", colorGray, archive, colorReset)
	}

	if err := document.Save(targetPath, merged); err != nil {
		return errors.Wrapf(err, "writing %s", targetPath)
	}

	fmt.Fprintf(w, "%s✓ merged %s into %s%s\n", colorGreen, src.Name, targetPath, colorReset)
	printStats(w, stats)
	return nil
}

// findSource scans and selects the source whose type matches. A source
// that is configured but absent or unparsable is a user error here, unlike
// in scan where it is just a status.
func findSource(sourceType string) (importer.Source, error) {
	scanner := importer.NewScanner()
	sources := scanner.Scan()

	for _, name := range scanner.Names() {
		src := sources[name]
		if src.Type != sourceType {
			continue
		}
		if !src.Exists {
			return importer.Source{}, errors.NewUserError(
				errors.Wrapf(errors.ErrSourceMissing, "%s (%s)", src.Name, src.Path),
				"Run 'ocfg import scan' to see which sources exist")
		}
		if src.Unreadable() {
			return importer.Source{}, errors.NewUserError(
				errors.Wrapf(errors.ErrUnreadable, "%s (%s)", src.Name, src.Path),
				"The file exists but could not be parsed; fix or remove it")
		}
		return src, nil
	}

	return importer.Source{}, errors.NewUserError(
		errors.Newf("unknown source %q", sourceType),
		"Use one of: claude, claude_providers, codex, gemini, ccswitch")
}

// loadLive reads the target config, treating a missing file as an empty
// document. Any other failure, including invalid JSON, aborts: merging
// into a file we cannot read would lose whatever it holds.
func loadLive(path string) (document.Value, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return document.NewObject(), nil
	}
	doc, err := document.Load(path)
	if err != nil {
		return document.Value{}, errors.NewUserError(
			errors.Wrapf(err, "reading %s", path),
			"The target config could not be parsed; fix it or restore a backup first")
	}
	return doc, nil
}

// decideFunc maps --on-conflict to a merge decision function.
func decideFunc(w io.Writer, in io.Reader) (importer.DecideFunc, error) {
	switch applyOnConflict {
	case "skip":
		return nil, nil
	case "overwrite":
		return func(importer.Conflict) importer.Decision {
			return importer.Overwrite
		}, nil
	case "ask":
		if !logging.IsTTY(os.Stdout) {
			// Non-interactive runs keep live values rather than hanging
			// on a prompt nobody will answer.
			return nil, nil
		}
		reader := bufio.NewReader(in)
		return func(c importer.Conflict) importer.Decision {
			fmt.Fprintf(w, "%s%s%s differs:\n", colorBold, c.Path, colorReset)
			fmt.Fprintf(w, "  current:  %s\n", displayValue(c.Path, c.Existing))
			fmt.Fprintf(w, "  incoming: %s\n", displayValue(c.Path, c.Incoming))
			fmt.Fprintf(w, "Overwrite? [y/N]: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return importer.Skip
			}
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "y", "yes":
				return importer.Overwrite
			default:
				return importer.Skip
			}
		}, nil
	default:
		return nil, errors.NewUserError(
			errors.Newf("unknown conflict mode %q", applyOnConflict),
			"Use one of: ask, skip, overwrite")
	}
}

// displayValue renders a conflict side for the prompt, masking anything
// that looks like a credential.
func displayValue(path string, v document.Value) string {
	switch {
	case v.IsString():
		s := v.Str()
		key := path
		if i := strings.LastIndex(path, "."); i >= 0 {
			key = path[i+1:]
		}
		if redact.ShouldMask(key) || redact.ContainsTokenPrefix(s) {
			return redact.MaskValue(s)
		}
		return fmt.Sprintf("%q", s)
	case v.IsObject():
		return fmt.Sprintf("{...} (%d keys)", v.Len())
	case v.Kind() == document.KindArray:
		return fmt.Sprintf("[...] (%d items)", len(v.Items()))
	case v.IsNull():
		return "null"
	case v.Kind() == document.KindBool:
		if v.BoolVal() {
			return "true"
		}
		return "false"
	default:
		return v.NumberText()
	}
}

func printStats(w io.Writer, stats importer.Stats) {
	fmt.Fprintf(w, "  added: %d  overwritten: %d  skipped: %d\n",
		stats.Added, stats.Overwritten, stats.Skipped)
}

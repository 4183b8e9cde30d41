package backup

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	ibackup "github.com/oc-tools/ocfg/internal/backup"
	"github.com/oc-tools/ocfg/internal/config"
	"github.com/oc-tools/ocfg/internal/errors"
	"github.com/oc-tools/ocfg/internal/paths"
)

// setupHome points HOME at a fresh temp dir and reinitializes config so the
// backup root lands under it.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	config.Init()
	return home
}

func writeManagedConfig(t *testing.T, home, name, content string) string {
	t.Helper()
	dir := filepath.Join(home, ".config", "opencode")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBackupCommand_Metadata(t *testing.T) {
	if Cmd.Use != "backup" {
		t.Errorf("Use = %q, want %q", Cmd.Use, "backup")
	}
	for _, sub := range []string{"create", "list", "restore", "delete", "prune"} {
		found := false
		for _, c := range Cmd.Commands() {
			if strings.HasPrefix(c.Use, sub) {
				found = true
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", sub)
		}
	}
	if createCmd.Flags().Lookup("tag") == nil {
		t.Error("--tag flag should be defined on create")
	}
	if listCmd.Flags().Lookup("json") == nil {
		t.Error("--json flag should be defined on list")
	}
}

func TestRunCreate_NoConfigsYet(t *testing.T) {
	setupHome(t)

	var buf bytes.Buffer
	if err := runCreateWithWriter(&buf, nil); err != nil {
		t.Fatalf("runCreateWithWriter() error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "skipped") {
		t.Errorf("output should note skipped configs: %q", output)
	}
	if !strings.Contains(output, "No backups created") {
		t.Errorf("output should say nothing was created: %q", output)
	}
}

func TestRunCreate_BacksUpManagedConfigs(t *testing.T) {
	home := setupHome(t)
	writeManagedConfig(t, home, "opencode.json", `{"a": 1}`)

	var buf bytes.Buffer
	if err := runCreateWithWriter(&buf, nil); err != nil {
		t.Fatalf("runCreateWithWriter() error: %v", err)
	}

	mgr := ibackup.NewManager()
	records, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d archives, want 1", len(records))
	}
	if records[0].Name != paths.NameOpenCode || records[0].Tag != ibackup.TagManual {
		t.Errorf("record = %+v", records[0])
	}
}

func TestRunCreate_ExplicitMissingPathFails(t *testing.T) {
	setupHome(t)

	var buf bytes.Buffer
	err := runCreateWithWriter(&buf, []string{filepath.Join(t.TempDir(), "absent.json")})
	if !errors.Is(err, errors.ErrSourceMissing) {
		t.Errorf("expected ErrSourceMissing, got %v", err)
	}
}

func TestRunList_Empty(t *testing.T) {
	setupHome(t)

	var buf bytes.Buffer
	if err := runListWithWriter(&buf); err != nil {
		t.Fatalf("runListWithWriter() error: %v", err)
	}
	if !strings.Contains(buf.String(), "No backups available") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestRunList_JSON(t *testing.T) {
	home := setupHome(t)
	src := writeManagedConfig(t, home, "opencode.json", `{"a": 1}`)

	mgr := ibackup.NewManager()
	if _, err := mgr.Backup(src, ibackup.TagManual); err != nil {
		t.Fatal(err)
	}

	listJSON = true
	defer func() { listJSON = false }()

	var buf bytes.Buffer
	if err := runListWithWriter(&buf); err != nil {
		t.Fatalf("runListWithWriter() error: %v", err)
	}

	var records []recordOutput
	if err := json.Unmarshal(buf.Bytes(), &records); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(records) != 1 || records[0].Name != "opencode" || records[0].Tag != "manual" {
		t.Errorf("records = %+v", records)
	}
}

func TestRunList_NameFilter(t *testing.T) {
	home := setupHome(t)
	src1 := writeManagedConfig(t, home, "opencode.json", `{}`)
	src2 := writeManagedConfig(t, home, "oh-my-opencode.json", `{}`)

	mgr := ibackup.NewManager()
	if _, err := mgr.Backup(src1, ibackup.TagManual); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.Backup(src2, ibackup.TagManual); err != nil {
		t.Fatal(err)
	}

	listName = "oh-my-opencode"
	defer func() { listName = "" }()

	var buf bytes.Buffer
	if err := runListWithWriter(&buf); err != nil {
		t.Fatal(err)
	}
	output := buf.String()
	if !strings.Contains(output, "oh-my-opencode") {
		t.Errorf("filtered name missing from output: %q", output)
	}
	if strings.Contains(output, "opencode.json") && !strings.Contains(output, "oh-my-opencode.json") {
		t.Errorf("filter leaked other names: %q", output)
	}
}

func TestResolveArchive_BareFilename(t *testing.T) {
	home := setupHome(t)
	src := writeManagedConfig(t, home, "opencode.json", `{}`)

	mgr := ibackup.NewManager()
	archive, err := mgr.Backup(src, ibackup.TagManual)
	if err != nil {
		t.Fatal(err)
	}

	rec, err := resolveArchive(mgr, filepath.Base(archive))
	if err != nil {
		t.Fatalf("resolveArchive() error: %v", err)
	}
	if rec.Path != archive {
		t.Errorf("Path = %q, want %q", rec.Path, archive)
	}

	// Full path resolves too.
	rec, err = resolveArchive(mgr, archive)
	if err != nil {
		t.Fatalf("resolveArchive(full path) error: %v", err)
	}
	if rec.Path != archive {
		t.Errorf("Path = %q, want %q", rec.Path, archive)
	}

	// Unknown names fail with the archive sentinel.
	_, err = resolveArchive(mgr, "opencode.20110101_000000.manual.bak")
	if !errors.Is(err, errors.ErrArchiveMissing) {
		t.Errorf("expected ErrArchiveMissing, got %v", err)
	}
}

func TestRunDelete_MissingArchiveFails(t *testing.T) {
	setupHome(t)

	var buf bytes.Buffer
	err := runDeleteWithWriter(&buf, []string{"opencode.20110101_000000.manual.bak"})
	if !errors.Is(err, errors.ErrArchiveMissing) {
		t.Errorf("expected ErrArchiveMissing, got %v", err)
	}
	if !strings.Contains(buf.String(), "not found") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestRunDelete_RemovesArchive(t *testing.T) {
	home := setupHome(t)
	src := writeManagedConfig(t, home, "opencode.json", `{}`)

	mgr := ibackup.NewManager()
	archive, err := mgr.Backup(src, ibackup.TagManual)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := runDeleteWithWriter(&buf, []string{archive}); err != nil {
		t.Fatalf("runDeleteWithWriter() error: %v", err)
	}
	if _, err := os.Stat(archive); !os.IsNotExist(err) {
		t.Error("archive still exists")
	}
}

func TestRunPrune_NothingToDo(t *testing.T) {
	setupHome(t)

	var buf bytes.Buffer
	if err := runPruneWithWriter(&buf); err != nil {
		t.Fatalf("runPruneWithWriter() error: %v", err)
	}
	if !strings.Contains(buf.String(), "No backups to prune") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestRunRestore_RoundTrip(t *testing.T) {
	home := setupHome(t)
	src := writeManagedConfig(t, home, "opencode.json", `{"a": 1}`)

	mgr := ibackup.NewManager()
	archive, err := mgr.Backup(src, ibackup.TagManual)
	if err != nil {
		t.Fatal(err)
	}

	// Drift the live file, then restore the archive over it.
	if err := os.WriteFile(src, []byte(`{"a": 2}`), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := runRestoreWithWriter(&buf, []string{archive}); err != nil {
		t.Fatalf("runRestoreWithWriter() error: %v", err)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"a": 1}` {
		t.Errorf("restored content = %q", data)
	}
}

package imports

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/oc-tools/ocfg/internal/config"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	config.Init()
	return home
}

func writeClaudeSettings(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".claude")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanCommand_Metadata(t *testing.T) {
	if scanCmd.Use != "scan" {
		t.Errorf("Use = %q, want %q", scanCmd.Use, "scan")
	}
	if scanCmd.Flags().Lookup("output") == nil {
		t.Error("--output flag should be defined")
	}
}

func TestRunScan_Table(t *testing.T) {
	home := setupHome(t)
	writeClaudeSettings(t, home, `{"apiKey": "sk-x"}`)

	var buf bytes.Buffer
	if err := runScanWithWriter(&buf); err != nil {
		t.Fatalf("runScanWithWriter() error: %v", err)
	}

	output := buf.String()
	for _, name := range []string{"Claude Code Settings", "Claude Providers", "Codex Config", "Gemini Config", "CC-Switch Config"} {
		if !strings.Contains(output, name) {
			t.Errorf("output missing source %q: %s", name, output)
		}
	}
	if !strings.Contains(output, "loaded") {
		t.Errorf("existing source should show as loaded: %s", output)
	}
	if !strings.Contains(output, "not found") {
		t.Errorf("absent sources should show as not found: %s", output)
	}
}

func TestRunScan_JSON(t *testing.T) {
	home := setupHome(t)
	writeClaudeSettings(t, home, `{"apiKey": "sk-x"}`)

	scanOutput = "json"
	defer func() { scanOutput = "table" }()

	var buf bytes.Buffer
	if err := runScanWithWriter(&buf); err != nil {
		t.Fatalf("runScanWithWriter() error: %v", err)
	}

	var parsed []sourceOutput
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(parsed) != 5 {
		t.Fatalf("got %d sources, want 5", len(parsed))
	}

	var claude *sourceOutput
	for i := range parsed {
		if parsed[i].Type == "claude" {
			claude = &parsed[i]
		}
	}
	if claude == nil {
		t.Fatal("claude source missing from output")
	}
	if !claude.Exists {
		t.Error("claude source should exist")
	}
	if claude.Data == nil {
		t.Error("loaded source should include its parsed contents")
	}
}

func TestRunScan_YAML(t *testing.T) {
	setupHome(t)

	scanOutput = "yaml"
	defer func() { scanOutput = "table" }()

	var buf bytes.Buffer
	if err := runScanWithWriter(&buf); err != nil {
		t.Fatalf("runScanWithWriter() error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "name: Claude Code Settings") {
		t.Errorf("yaml output missing source entry: %s", output)
	}
	if !strings.Contains(output, "exists: false") {
		t.Errorf("yaml output missing existence flags: %s", output)
	}
}

func TestRunScan_UnknownFormat(t *testing.T) {
	setupHome(t)

	scanOutput = "xml"
	defer func() { scanOutput = "table" }()

	var buf bytes.Buffer
	if err := runScanWithWriter(&buf); err == nil {
		t.Error("expected error for unknown output format")
	}
}

package imports

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oc-tools/ocfg/internal/errors"
	"github.com/oc-tools/ocfg/internal/importer"
)

var scanOutput string

func init() {
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "table",
		"output format: table, json, yaml")
	Cmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Probe the known foreign config locations",
	Long: `Probe every known foreign config location and report what exists.

Each location is reported whether or not the file is present, so the
output always shows the full set of import candidates. A file that exists
but cannot be parsed is reported as unreadable, never as an error.

The json and yaml formats include each source's parsed contents verbatim,
including credentials. The table format shows only paths and status.`,
	Example: `  # Human-readable overview
  ocfg import scan

  # Full parsed contents as JSON
  ocfg import scan --output json

  See Also:
    ocfg import apply - Convert and merge one source`,
	RunE: runScan,
}

// sourceOutput is the json/yaml representation of one scanned source.
type sourceOutput struct {
	Name       string `json:"name" yaml:"name"`
	Type       string `json:"type" yaml:"type"`
	Path       string `json:"path" yaml:"path"`
	Format     string `json:"format" yaml:"format"`
	Exists     bool   `json:"exists" yaml:"exists"`
	Unreadable bool   `json:"unreadable,omitempty" yaml:"unreadable,omitempty"`
	Data       any    `json:"data,omitempty" yaml:"data,omitempty"`
}

func runScan(_ *cobra.Command, _ []string) error {
	return runScanWithWriter(os.Stdout)
}

func runScanWithWriter(w io.Writer) error {
	scanner := importer.NewScanner()
	sources := scanner.Scan()

	switch scanOutput {
	case "table":
		return scanTable(w, scanner, sources)
	case "json", "yaml":
		return scanStructured(w, scanner, sources)
	default:
		return errors.NewUserError(
			errors.Newf("unknown output format %q", scanOutput),
			"Use one of: table, json, yaml")
	}
}

func scanTable(w io.Writer, scanner *importer.Scanner, sources map[string]importer.Source) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sSOURCE%s\t%sTYPE%s\t%sPATH%s\t%sSTATUS%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for _, name := range scanner.Names() {
		src := sources[name]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", src.Name, src.Type, src.Path, statusLabel(src))
	}
	return tw.Flush()
}

func statusLabel(src importer.Source) string {
	switch {
	case !src.Exists:
		return colorGray + "not found" + colorReset
	case src.Unreadable():
		return colorYellow + "present but unreadable" + colorReset
	default:
		return fmt.Sprintf("%sloaded%s (%d top-level keys)", colorGreen, colorReset, src.Doc.Len())
	}
}

func scanStructured(w io.Writer, scanner *importer.Scanner, sources map[string]importer.Source) error {
	output := make([]sourceOutput, 0, len(sources))
	for _, name := range scanner.Names() {
		src := sources[name]
		entry := sourceOutput{
			Name:       src.Name,
			Type:       src.Type,
			Path:       src.Path,
			Format:     string(src.Format),
			Exists:     src.Exists,
			Unreadable: src.Unreadable(),
		}
		if src.Loaded {
			entry.Data = src.Doc.Interface()
		}
		output = append(output, entry)
	}

	if scanOutput == "yaml" {
		data, err := yaml.Marshal(output)
		if err != nil {
			return errors.Wrap(err, "encoding output")
		}
		_, err = w.Write(data)
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(output), "encoding output")
}

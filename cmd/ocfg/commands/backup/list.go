package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/oc-tools/ocfg/internal/errors"
)

var (
	listJSON bool
	listName string
)

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listName, "name", "", "Only archives of this logical config name")
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List archives",
	Long: `List backup archives, most recent first.

Every field shown is recovered from the archive filename; files in the
backup root that do not match the naming pattern are ignored.`,
	Example: `  # List all archives
  ocfg backup list

  # Only archives of the main config
  ocfg backup list --name opencode

  # Output as JSON
  ocfg backup list --json

  See Also:
    ocfg backup restore - Restore from an archive
    ocfg backup delete  - Delete archives`,
	RunE: runList,
}

// recordOutput represents a single archive in JSON output.
type recordOutput struct {
	Name      string    `json:"name"`
	Timestamp string    `json:"timestamp"`
	CreatedAt time.Time `json:"created_at"`
	Tag       string    `json:"tag"`
	Path      string    `json:"path"`
}

func runList(_ *cobra.Command, _ []string) error {
	return runListWithWriter(os.Stdout)
}

func runListWithWriter(w io.Writer) error {
	mgr, _, err := newManager()
	if err != nil {
		return err
	}

	records, err := mgr.List()
	if err != nil {
		return errors.Wrap(err, "listing backups")
	}
	if listName != "" {
		filtered := records[:0]
		for _, rec := range records {
			if rec.Name == listName {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	if listJSON {
		output := make([]recordOutput, len(records))
		for i, rec := range records {
			output[i] = recordOutput{
				Name:      rec.Name,
				Timestamp: rec.Timestamp,
				CreatedAt: rec.CreatedAt,
				Tag:       rec.Tag,
				Path:      rec.Path,
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(output), "encoding output")
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "No backups available")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Backups are created automatically before ocfg modifies configurations.")
		fmt.Fprintln(w, "You can also create one manually with: ocfg backup create")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sNAME%s\t%sCREATED%s\t%sTAG%s\t%sARCHIVE%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)
	for _, rec := range records {
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s\t%s\n",
			colorGreen, rec.Name, colorReset,
			rec.CreatedAt.Format("2006-01-02 15:04:05"),
			rec.Tag,
			rec.Path)
	}
	tw.Flush()

	return nil
}

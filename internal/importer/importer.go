package importer

import (
	"os"

	"github.com/oc-tools/ocfg/internal/document"
	"github.com/oc-tools/ocfg/internal/paths"
	"github.com/oc-tools/ocfg/pkg/fileutil"
)

// Format identifies the on-disk format of a foreign config file.
type Format string

const (
	// FormatJSON is a standard JSON file.
	FormatJSON Format = "json"
	// FormatTOML is the minimal TOML subset read by ParseTOMLSubset.
	FormatTOML Format = "toml"
)

// Source type tags, used to select a conversion rule.
const (
	TypeClaude          = "claude"
	TypeClaudeProviders = "claude_providers"
	TypeCodex           = "codex"
	TypeGemini          = "gemini"
	TypeCCSwitch        = "ccswitch"
)

// Location is one foreign-tool configuration location the scanner probes.
type Location struct {
	// Name is the human-readable source name, also the scan result key.
	Name string

	// Type selects the conversion rule for this source.
	Type string

	// Path is the resolved filesystem location.
	Path string

	// Format is the loader used when the file exists.
	Format Format
}

// Source is the scan result for one location. Every configured location
// yields a Source whether or not the file exists, so callers can render
// "not found" rows.
type Source struct {
	Name   string
	Type   string
	Path   string
	Format Format

	// Exists reports whether the file was present at scan time.
	Exists bool

	// Loaded reports whether Doc holds the parsed document. A source that
	// exists but did not load is present-but-unreadable.
	Loaded bool

	// Doc is the parsed document when Loaded is true.
	Doc document.Value
}

// Unreadable reports whether the file exists but failed to parse under its
// declared format.
func (s Source) Unreadable() bool {
	return s.Exists && !s.Loaded
}

// DefaultLocations returns the fixed set of foreign config locations,
// in display order.
func DefaultLocations() []Location {
	return []Location{
		{Name: "Claude Code Settings", Type: TypeClaude, Path: paths.ClaudeSettings(), Format: FormatJSON},
		{Name: "Claude Providers", Type: TypeClaudeProviders, Path: paths.ClaudeProviders(), Format: FormatJSON},
		{Name: "Codex Config", Type: TypeCodex, Path: paths.CodexConfig(), Format: FormatTOML},
		{Name: "Gemini Config", Type: TypeGemini, Path: paths.GeminiConfig(), Format: FormatJSON},
		{Name: "CC-Switch Config", Type: TypeCCSwitch, Path: paths.CCSwitchConfig(), Format: FormatJSON},
	}
}

// Scanner discovers foreign-tool configuration at a fixed set of locations.
type Scanner struct {
	locations []Location
}

// NewScanner creates a Scanner over the default locations.
func NewScanner() *Scanner {
	return &Scanner{locations: DefaultLocations()}
}

// NewScannerWithLocations creates a Scanner over a custom location set.
// Used by tests and by callers that relocate foreign configs.
func NewScannerWithLocations(locations []Location) *Scanner {
	return &Scanner{locations: locations}
}

// Names returns the source names in display order.
func (s *Scanner) Names() []string {
	names := make([]string, len(s.locations))
	for i, loc := range s.locations {
		names[i] = loc.Name
	}
	return names
}

// Scan probes every configured location and loads what exists. It never
// fails: a missing file is reported as Exists=false, a file that cannot be
// read or parsed as present-but-unreadable. One entry is returned per
// configured location regardless of existence.
func (s *Scanner) Scan() map[string]Source {
	results := make(map[string]Source, len(s.locations))
	for _, loc := range s.locations {
		results[loc.Name] = scanOne(loc)
	}
	return results
}

func scanOne(loc Location) Source {
	src := Source{
		Name:   loc.Name,
		Type:   loc.Type,
		Path:   loc.Path,
		Format: loc.Format,
	}

	info, err := os.Stat(loc.Path)
	if err != nil || info.IsDir() {
		return src
	}
	src.Exists = true

	data, err := fileutil.ReadFileWithLimit(loc.Path)
	if err != nil {
		return src
	}

	switch loc.Format {
	case FormatTOML:
		src.Doc = ParseTOMLSubset(data)
		src.Loaded = true
	default:
		doc, err := document.Parse(data)
		if err != nil {
			return src
		}
		src.Doc = doc
		src.Loaded = true
	}

	return src
}

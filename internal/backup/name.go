package backup

import (
	"path/filepath"
	"strings"
	"time"
)

// EncodeArchiveName builds an archive filename from its three fields.
func EncodeArchiveName(name, timestamp, tag string) string {
	return name + "." + timestamp + "." + tag + Ext
}

// ParseArchiveName recovers a Record (without Path) from an archive
// filename. It returns false for filenames that do not match the
// <name>.<timestamp>.<tag>.bak pattern; such files are skipped by List
// rather than reported as errors.
func ParseArchiveName(filename string) (Record, bool) {
	if !strings.HasSuffix(filename, Ext) {
		return Record{}, false
	}
	stem := strings.TrimSuffix(filename, Ext)

	parts := strings.Split(stem, ".")
	if len(parts) != 3 {
		return Record{}, false
	}

	rec := Record{
		Name:      parts[0],
		Timestamp: parts[1],
		Tag:       parts[2],
	}
	if rec.Name == "" || rec.Tag == "" {
		return Record{}, false
	}

	// Strip a "-N" collision suffix before parsing the time.
	base := rec.Timestamp
	if i := strings.IndexByte(base, '-'); i >= 0 {
		base = base[:i]
	}
	created, err := time.ParseInLocation(TimestampLayout, base, time.Local)
	if err != nil {
		return Record{}, false
	}
	rec.CreatedAt = created

	return rec, true
}

// logicalName derives the logical config name from a source path:
// the base filename without its extension, with any remaining dots
// flattened so the archive name stays parseable.
func logicalName(sourcePath string) string {
	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.ReplaceAll(stem, ".", "-")
	if stem == "" {
		return "config"
	}
	return stem
}

// sanitizeTag flattens characters that would break filename parsing.
func sanitizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	tag = strings.ReplaceAll(tag, ".", "-")
	tag = strings.ReplaceAll(tag, string(filepath.Separator), "-")
	if tag == "" {
		return TagAuto
	}
	return tag
}

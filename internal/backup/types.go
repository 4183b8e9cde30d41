package backup

import (
	"time"
)

// Archive filename layout: <name>.<timestamp>.<tag>.bak
// All three fields are recovered from the filename alone, so listing the
// backup root is a pure directory scan with no side index.
const (
	// Ext is the archive file extension.
	Ext = ".bak"

	// TimestampLayout is the second-precision timestamp encoded in archive
	// filenames. Same-second collisions get a "-2", "-3", ... suffix.
	TimestampLayout = "20060102_150405"
)

// Well-known tags used by ocfg itself. Callers may pass any other tag.
const (
	// TagManual marks a backup requested explicitly by the user.
	TagManual = "manual"

	// TagAuto marks a backup taken automatically before a config write.
	TagAuto = "auto"

	// TagPreRestore marks the safety backup taken before a restore
	// overwrites the target.
	TagPreRestore = "pre-restore"
)

// DefaultRetentionCount is the default number of backups to retain per
// logical config name when pruning.
const DefaultRetentionCount = 5

// Record describes one archived copy of a configuration file, reconstructed
// entirely from its filename. Records are immutable once written and are
// destroyed only by an explicit delete.
type Record struct {
	// Name is the logical config name the archive was taken from
	// (e.g. "opencode", "oh-my-opencode").
	Name string

	// Timestamp is the raw timestamp field from the filename, including any
	// collision suffix ("20250825_120000-2").
	Timestamp string

	// CreatedAt is the parsed creation time, at second precision.
	CreatedAt time.Time

	// Tag is the caller-supplied free-text tag.
	Tag string

	// Path is the archive file's location under the backup root.
	Path string
}

// Display returns the human-readable one-line form used in pickers and
// tables: "name - timestamp (tag)".
func (r Record) Display() string {
	return r.Name + " - " + r.Timestamp + " (" + r.Tag + ")"
}

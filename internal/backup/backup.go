package backup

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	ocfgerrors "github.com/oc-tools/ocfg/internal/errors"
	"github.com/oc-tools/ocfg/internal/paths"
)

// Manager handles timestamped snapshots of configuration files under a
// single backup root. The root is created lazily on first backup; the
// manager owns it exclusively, but tolerates other processes mutating it
// between calls by re-checking existence immediately before acting.
type Manager struct {
	rootDir string
}

// Option configures a Manager.
type Option func(*Manager)

// WithBackupDir sets the backup root directory.
func WithBackupDir(dir string) Option {
	return func(m *Manager) {
		if dir != "" {
			m.rootDir = dir
		}
	}
}

// NewManager creates a backup Manager with the given options.
// The default root is ~/.config/opencode/backups.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		rootDir: paths.BackupDir(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Root returns the backup root directory.
func (m *Manager) Root() string {
	return m.rootDir
}

// Backup copies the file at sourcePath into a new timestamped archive and
// returns the archive's path. The source is never mutated.
//
// Returns ErrSourceMissing if sourcePath does not exist at call time.
// Two backups of the same source within the same second produce distinct
// archives; the second gets a "-2" suffix on its timestamp field.
func (m *Manager) Backup(sourcePath, tag string) (string, error) {
	info, err := os.Stat(sourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(ocfgerrors.ErrSourceMissing, "%s", sourcePath)
		}
		return "", errors.Wrapf(err, "stat %s", sourcePath)
	}
	if info.IsDir() {
		return "", errors.Newf("%s is a directory, not a config file", sourcePath)
	}

	if err := paths.EnsureDir(m.rootDir, 0o755); err != nil {
		return "", errors.Wrap(ocfgerrors.ErrWriteFailure, err.Error())
	}

	name := logicalName(sourcePath)
	tag = sanitizeTag(tag)
	timestamp := time.Now().Format(TimestampLayout)

	archivePath := filepath.Join(m.rootDir, EncodeArchiveName(name, timestamp, tag))
	// Same-second backups of the same source: disambiguate rather than
	// overwrite.
	for n := 2; fileExists(archivePath); n++ {
		suffixed := timestamp + "-" + strconv.Itoa(n)
		archivePath = filepath.Join(m.rootDir, EncodeArchiveName(name, suffixed, tag))
	}

	if err := copyFile(sourcePath, archivePath); err != nil {
		return "", errors.Wrap(ocfgerrors.ErrWriteFailure, err.Error())
	}

	return archivePath, nil
}

// List returns all archives under the backup root, most recent first,
// derived purely from scanning filenames. Files that do not match the
// archive naming pattern are skipped silently. A missing backup root means
// no backups exist yet and is not an error.
func (m *Manager) List() ([]Record, error) {
	entries, err := os.ReadDir(m.rootDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading backup directory")
	}

	records := make([]Record, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		rec, ok := ParseArchiveName(entry.Name())
		if !ok {
			continue
		}
		rec.Path = filepath.Join(m.rootDir, entry.Name())
		records = append(records, rec)
	}

	// Newest first. The raw timestamp field sorts correctly even with
	// collision suffixes; name breaks ties for a stable order.
	slices.SortFunc(records, func(a, b Record) int {
		if c := strings.Compare(b.Timestamp, a.Timestamp); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	return records, nil
}

// ListFor returns the archives whose logical name matches name, most recent
// first.
func (m *Manager) ListFor(name string) ([]Record, error) {
	all, err := m.List()
	if err != nil {
		return nil, err
	}
	records := all[:0:0]
	for _, rec := range all {
		if rec.Name == name {
			records = append(records, rec)
		}
	}
	return records, nil
}

// Restore copies an archive's bytes over targetPath, creating parent
// directories if absent. If the target currently exists, a safety backup
// with the "pre-restore" tag is taken first; if it does not, the safety
// backup is skipped silently.
//
// Returns ErrArchiveMissing if the archive no longer exists at call time.
// The safety-backup-then-overwrite sequence is not atomic: a crash between
// the two steps leaves the safety backup present and the target untouched,
// which is recoverable by restoring again.
func (m *Manager) Restore(archivePath, targetPath string) error {
	if _, ok := ParseArchiveName(filepath.Base(archivePath)); !ok {
		return errors.Wrapf(paths.ErrInvalidPath, "%s is not a backup archive", archivePath)
	}
	if !fileExists(archivePath) {
		return errors.Wrapf(ocfgerrors.ErrArchiveMissing, "%s", archivePath)
	}

	// Safety backup of whatever is currently at the target.
	if _, err := m.Backup(targetPath, TagPreRestore); err != nil {
		if !errors.Is(err, ocfgerrors.ErrSourceMissing) {
			return errors.Wrap(err, "taking pre-restore backup")
		}
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
		return errors.Wrap(ocfgerrors.ErrWriteFailure, err.Error())
	}

	if err := copyFile(archivePath, targetPath); err != nil {
		// Distinguish the archive vanishing mid-call from a write problem.
		if os.IsNotExist(errors.UnwrapAll(err)) {
			return errors.Wrapf(ocfgerrors.ErrArchiveMissing, "%s", archivePath)
		}
		return errors.Wrap(ocfgerrors.ErrWriteFailure, err.Error())
	}

	return nil
}

// Delete removes an archive file. Deleting an archive that is already
// absent reports ErrArchiveMissing; delete is deliberately strict so the
// caller can tell the user the archive was not there to remove.
func (m *Manager) Delete(archivePath string) error {
	if _, ok := ParseArchiveName(filepath.Base(archivePath)); !ok {
		return errors.Wrapf(paths.ErrInvalidPath, "%s is not a backup archive", archivePath)
	}

	if err := os.Remove(archivePath); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(ocfgerrors.ErrArchiveMissing, "%s", archivePath)
		}
		return errors.Wrapf(err, "removing %s", archivePath)
	}
	return nil
}

// Prune removes old archives beyond the retention count, per logical config
// name. Keeps the most recent keep archives for each name.
func (m *Manager) Prune(keep int) (int, error) {
	if keep < 0 {
		return 0, errors.New("keep must be non-negative")
	}

	records, err := m.List()
	if err != nil {
		return 0, err
	}

	// Records are newest first, so counting per name walks oldest last.
	seen := make(map[string]int)
	removed := 0
	for _, rec := range records {
		seen[rec.Name]++
		if seen[rec.Name] <= keep {
			continue
		}
		if err := m.Delete(rec.Path); err != nil {
			// Another process may have removed it already.
			if errors.Is(err, ocfgerrors.ErrArchiveMissing) {
				continue
			}
			return removed, err
		}
		removed++
	}

	return removed, nil
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// copyFile copies src's current bytes to dst, preserving src's permission
// bits. The handle is held only for the duration of the copy.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "opening source file")
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return errors.Wrap(err, "stat source file")
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrap(err, "creating destination file")
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return errors.Wrap(err, "copying file")
	}

	if err := dstFile.Close(); err != nil {
		return errors.Wrap(err, "closing destination file")
	}

	if err := os.Chmod(dst, srcInfo.Mode()); err != nil {
		return errors.Wrap(err, "setting permissions")
	}

	return nil
}

// Package backup provides durable, timestamped snapshots of OpenCode
// configuration files, with list, restore, delete and prune operations.
//
// # Archive layout
//
// Every archive is a flat file under a single backup root
// (~/.config/opencode/backups by default):
//
//	<name>.<YYYYMMDD_HHMMSS>.<tag>.bak
//
// The logical config name, creation timestamp and caller-supplied tag are
// all encoded in the filename, so [Manager.List] is a pure directory scan
// with no side index. Filenames that do not match the pattern are skipped,
// never reported as errors.
//
// # Creating and restoring
//
//	mgr := backup.NewManager()
//	archive, err := mgr.Backup(paths.OpenCodeConfig(), backup.TagManual)
//	...
//	err = mgr.Restore(archive, paths.OpenCodeConfig())
//
// Restore first snapshots whatever currently exists at the target under the
// "pre-restore" tag, then copies the archive's bytes over it. The two steps
// are not atomic; a crash in between leaves the safety backup in place and
// the target unchanged.
//
// # Failure semantics
//
// Backup, restore and delete surface failures as explicit errors
// ([ocfgerrors.ErrSourceMissing], [ocfgerrors.ErrArchiveMissing],
// [ocfgerrors.ErrWriteFailure]) rather than degrading silently, because the
// caller must inform the user before or after any destructive step.
// Existence is re-checked immediately before acting: another process or
// user may mutate the backup root or the target between calls.
package backup

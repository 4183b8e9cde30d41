// Package paths centralizes the well-known filesystem locations ocfg reads
// and writes: the OpenCode config files it manages, the foreign tool configs
// it can import from, the backup root, and ocfg's own config directory.
//
// Callers must not hard-code any of these paths; routing them through this
// package keeps the persisted layout reproducible.
package paths

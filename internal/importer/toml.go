package importer

import (
	"strings"

	"github.com/oc-tools/ocfg/internal/document"
)

// ParseTOMLSubset reads the minimal TOML subset used by Codex's config
// file: `[section]` / `[section.sub]` headers and `key = value` assignments
// where the value is a quoted string, true, or false. Unquoted non-boolean
// values are kept as raw strings.
//
// This is deliberately not a TOML implementation. Arrays, multi-line
// strings, inline tables and everything else TOML allows are undefined here
// and may silently misparse; the one foreign source that needs this reader
// does not use them. Do not generalize it. Use ocfg doctor to check a file
// against a real TOML parser.
func ParseTOMLSubset(data []byte) document.Value {
	root := document.NewObject()
	current := root

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			current = openSection(root, line[1:len(line)-1])
			continue
		}

		key, rest, ok := strings.Cut(line, "=")
		if !ok {
			// Not a header, not an assignment: skip silently.
			continue
		}
		current.Set(strings.TrimSpace(key), parseScalar(strings.TrimSpace(rest)))
	}

	return root
}

// openSection walks a dotted section path from the root, creating nested
// objects as needed. A path segment that already holds a non-object is
// replaced; that is part of the accepted misparse behavior.
func openSection(root document.Value, section string) document.Value {
	current := root
	for _, part := range strings.Split(section, ".") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		next, ok := current.Get(part)
		if !ok || !next.IsObject() {
			next = document.NewObject()
			current.Set(part, next)
		}
		current = next
	}
	return current
}

func parseScalar(raw string) document.Value {
	if len(raw) >= 2 {
		if (raw[0] == '"' && raw[len(raw)-1] == '"') ||
			(raw[0] == '\'' && raw[len(raw)-1] == '\'') {
			return document.String(raw[1 : len(raw)-1])
		}
	}
	switch raw {
	case "true":
		return document.Bool(true)
	case "false":
		return document.Bool(false)
	}
	return document.String(raw)
}

package document

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/oc-tools/ocfg/pkg/fileutil"
)

// Load reads and parses the JSON document at path.
func Load(path string) (Value, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return Value{}, err
	}
	v, err := Parse(data)
	if err != nil {
		return Value{}, errors.Wrapf(err, "parsing %s", path)
	}
	return v, nil
}

// Save writes the document to path atomically, creating parent directories
// as needed. The on-disk form is 2-space-indented JSON with a trailing
// newline.
func Save(path string, v Value) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", path)
	}
	return fileutil.AtomicWriteFile(path, v.MarshalIndent(), 0o644)
}

package organize

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/handlesort/pkg/fileutil"
)

// csvHeader is the first row of every action log.
var csvHeader = []string{"action", "handle", "src", "dst"}

// WriteLog writes the action log as CSV to path, creating parent
// directories as needed. The file is written atomically; a crashed run
// never leaves a truncated log behind. Only action rows are written, no
// summary rows, so the file stays machine-parseable.
func WriteLog(path string, actions []Action) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return errors.Wrap(err, "writing csv header")
	}
	for _, a := range actions {
		if err := w.Write([]string{a.Action, a.Handle, a.Src, a.Dst}); err != nil {
			return errors.Wrap(err, "writing csv row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrap(err, "flushing csv")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating log directory")
	}
	return errors.Wrap(fileutil.AtomicWriteFile(path, buf.Bytes(), 0o644), "writing log")
}

package organize

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// Action values recorded in the action log.
const (
	ActionMoved   = "MOVED"
	ActionDryMove = "DRY-MOVE"
)

// Action is one executed (or dry-run) move, as recorded in the log.
type Action struct {
	Action string
	Handle string
	Src    string

	// Dst is the final destination, after any collision renaming.
	Dst string
}

// Runner applies a move plan.
type Runner struct {
	dryRun bool
	logger *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithDryRun makes the Runner plan and log without touching the filesystem.
func WithDryRun(dry bool) Option {
	return func(r *Runner) {
		r.dryRun = dry
	}
}

// WithLogger sets the logger used for per-file progress.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a Runner with the given options.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Apply executes the plan one move at a time and returns the actions taken.
// The first filesystem error aborts the run; actions completed before the
// failure are still returned so they can be logged.
func (r *Runner) Apply(moves []Move) ([]Action, error) {
	actions := make([]Action, 0, len(moves))

	for _, m := range moves {
		if r.dryRun {
			r.logger.Info("would move", "file", filepath.Base(m.Src), "handle", m.Handle)
			actions = append(actions, Action{ActionDryMove, m.Handle, m.Src, m.Dst})
			continue
		}

		if err := os.MkdirAll(filepath.Dir(m.Dst), 0o755); err != nil {
			return actions, errors.Wrap(err, "creating destination directory")
		}

		dst := avoidCollision(m.Dst)
		if err := moveFile(m.Src, dst); err != nil {
			return actions, errors.Wrapf(err, "moving %s", filepath.Base(m.Src))
		}

		r.logger.Info("moved", "file", filepath.Base(m.Src), "handle", m.Handle, "dst", dst)
		actions = append(actions, Action{ActionMoved, m.Handle, m.Src, dst})
	}

	return actions, nil
}

// avoidCollision probes for a destination path that does not exist yet.
// On collision it appends __1, __2, ... to the stem until a free name is
// found, so an existing file is never overwritten.
func avoidCollision(dst string) string {
	if _, err := os.Stat(dst); os.IsNotExist(err) {
		return dst
	}

	ext := filepath.Ext(dst)
	stem := strings.TrimSuffix(dst, ext)
	for i := 1; ; i++ {
		probe := fmt.Sprintf("%s__%d%s", stem, i, ext)
		if _, err := os.Stat(probe); os.IsNotExist(err) {
			return probe
		}
	}
}

// moveFile renames src to dst, falling back to copy-and-remove when the
// rename fails (typically a cross-device move).
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	return copyAndRemove(src, dst)
}

func copyAndRemove(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "opening source")
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errors.Wrap(err, "statting source")
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return errors.Wrap(err, "creating destination")
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return errors.Wrap(err, "copying file")
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(err, "closing destination")
	}

	return errors.Wrap(os.Remove(src), "removing source")
}

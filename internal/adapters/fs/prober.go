package fs

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// Prober implements the output lock probe with flock(2).
type Prober struct{}

// NewProber creates a new Prober.
func NewProber() *Prober {
	return &Prober{}
}

// Probe opens path read/write and attempts a non-blocking exclusive lock,
// releasing it immediately. A missing file probes clean. locked=true means
// another application holds the file and the run must stop before any
// write-capable step.
//
// The probe is check-then-use racy; that is accepted for a single-operator
// tool.
func (p *Prober) Probe(path string) (locked bool, err error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0) //nolint:gosec // path comes from the resolved layout
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		// Open refused outright (e.g. mandatory lock or permissions held
		// by the consuming application). Treat as locked rather than
		// failing with an unrelated error.
		if errors.Is(err, fs.ErrPermission) {
			return true, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to open output artifact"), "path", path)
	}
	defer f.Close() //nolint:errcheck // best effort close of a probe handle

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		if errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EAGAIN) {
			return true, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to probe output lock"), "path", path)
	}

	_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
	return false, nil
}

// Package shell provides the process runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"sync"

	"go.ledgerline.dev/preflight/internal/core/domain"
	"go.ledgerline.dev/preflight/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.ProcessRunner using os/exec.
//
// Each invocation blocks until the child exits. Output is streamed line-wise
// to the logger as it arrives and accumulated verbatim into the outcome, so
// gate failures can attach the child's full diagnostic text.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run executes cmd and waits for it to exit.
//
// The child inherits the parent environment with cmd.Env entries appended,
// so explicit settings win over inherited ones. Stdout and stderr share one
// writer; os/exec guarantees serialized writes when both streams use the
// same writer value, which keeps the captured interleaving race-free.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) (domain.ProcessOutcome, error) {
	outcome := domain.ProcessOutcome{
		Command:  cmd.String(),
		ExitCode: -1,
	}

	if cmd.Path == "" {
		return outcome, zerr.New("command path is empty")
	}

	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...) //nolint:gosec // command assembled from validated layout
	c.Dir = cmd.Dir
	c.Env = append(os.Environ(), cmd.Env...)

	w := newTeeWriter(r.logger)
	c.Stdout = w
	c.Stderr = w

	err := c.Run()
	w.flush()
	outcome.Output = w.String()

	if err == nil {
		outcome.ExitCode = 0
		return outcome, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The process ran and exited non-zero. Not a runner error; the
		// caller decides which gate failure this is.
		outcome.ExitCode = exitErr.ExitCode()
		return outcome, nil
	}

	if ctx.Err() != nil {
		return outcome, zerr.With(zerr.Wrap(ctx.Err(), "command interrupted"), "command", outcome.Command)
	}
	return outcome, zerr.With(zerr.Wrap(err, "failed to start command"), "command", outcome.Command)
}

// teeWriter accumulates everything written and forwards complete lines to the
// logger. Partial lines are buffered until a newline or flush.
type teeWriter struct {
	logger ports.Logger

	mu      sync.Mutex
	all     bytes.Buffer
	pending bytes.Buffer
}

func newTeeWriter(logger ports.Logger) *teeWriter {
	return &teeWriter{logger: logger}
}

func (w *teeWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.all.Write(p)
	w.pending.Write(p)

	for {
		line, rest, found := strings.Cut(w.pending.String(), "\n")
		if !found {
			break
		}
		if line != "" {
			w.logger.Info(line)
		}
		w.pending.Reset()
		w.pending.WriteString(rest)
	}
	return len(p), nil
}

func (w *teeWriter) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending.Len() > 0 {
		w.logger.Info(w.pending.String())
		w.pending.Reset()
	}
}

func (w *teeWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.all.String()
}

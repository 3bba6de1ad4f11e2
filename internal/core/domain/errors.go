package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrMissingDependency is returned when a required file or directory is absent.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrNoExtractorsFound is returned when the extractor directory contains no scripts.
	ErrNoExtractorsFound = zerr.New("no extractor scripts found")

	// ErrOutputLocked is returned when the output artifact is held open by another
	// application and cannot be locked exclusively.
	ErrOutputLocked = zerr.New("output artifact is locked")

	// ErrDependencyInstallFailed is returned when the package manager exits non-zero.
	ErrDependencyInstallFailed = zerr.New("dependency install failed")

	// ErrSyntaxCheckFailed is returned when the batch compile check exits non-zero.
	ErrSyntaxCheckFailed = zerr.New("syntax check failed")

	// ErrPipelineCrashed is returned when the pipeline process fails to start or
	// exits non-zero.
	ErrPipelineCrashed = zerr.New("pipeline crashed")

	// ErrOutputNotProduced is returned when the pipeline exits zero but the output
	// artifact does not exist afterwards. Kept distinct from ErrPipelineCrashed so
	// the operator knows to look for a silent logical failure, not a stack trace.
	ErrOutputNotProduced = zerr.New("pipeline exited cleanly but produced no output artifact")
)

// IsGateFailure reports whether err wraps one of the gate sentinels, as
// opposed to a usage or configuration error raised before the chain started.
func IsGateFailure(err error) bool {
	for _, sentinel := range []error{
		ErrMissingDependency,
		ErrNoExtractorsFound,
		ErrOutputLocked,
		ErrDependencyInstallFailed,
		ErrSyntaxCheckFailed,
		ErrPipelineCrashed,
		ErrOutputNotProduced,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

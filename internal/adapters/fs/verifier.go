package fs

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/zerr"
)

// Verifier provides functionality to verify the existence of files.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify checks whether the file at path exists.
func (v *Verifier) Verify(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat output"), "path", path)
	}
	return true, nil
}

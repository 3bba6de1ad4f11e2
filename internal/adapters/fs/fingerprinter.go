package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Fingerprinter computes a stable XXHash fingerprint over a file set.
type Fingerprinter struct{}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{}
}

// Fingerprint hashes each file's content concurrently, then folds the
// per-file digests into one in sorted path order so the result is
// deterministic and independent of input order.
func (f *Fingerprinter) Fingerprint(paths []string) (string, error) {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	sums := make([]uint64, len(sorted))

	var g errgroup.Group
	for i, path := range sorted {
		g.Go(func() error {
			sum, err := hashFile(path)
			if err != nil {
				return err
			}
			sums[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	combined := xxhash.New()
	var buf [8]byte
	for i, path := range sorted {
		_, _ = combined.WriteString(path)
		_, _ = combined.Write([]byte{0})
		binary.LittleEndian.PutUint64(buf[:], sums[i])
		_, _ = combined.Write(buf[:])
	}

	return fmt.Sprintf("%016x", combined.Sum64()), nil
}

func hashFile(path string) (uint64, error) {
	file, err := os.Open(path) //nolint:gosec // paths come from discovery
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer file.Close() //nolint:errcheck // read-only handle

	h := xxhash.New()
	if _, err := io.Copy(h, file); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return h.Sum64(), nil
}

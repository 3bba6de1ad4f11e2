package ports

// Fingerprinter computes a stable content fingerprint over a set of files.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// Fingerprint hashes the paths and contents of the given files into a
	// single hex digest. The result is independent of input order.
	Fingerprint(paths []string) (string, error)
}

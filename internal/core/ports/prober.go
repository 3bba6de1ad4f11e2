package ports

// LockProber checks whether the output artifact can be opened exclusively.
//
// The probe is open-lock-release, so it is inherently time-of-check vs.
// time-of-use racy. Acceptable for a single-operator tool.
//
//go:generate go run go.uber.org/mock/mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type LockProber interface {
	// Probe returns locked=true when the file exists and is held open by
	// another application. A missing file probes clean.
	Probe(path string) (locked bool, err error)
}

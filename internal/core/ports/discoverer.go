package ports

// Discoverer enumerates extractor scripts in a directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=discoverer.go -destination=mocks/mock_discoverer.go -package=mocks
type Discoverer interface {
	// Discover returns the sorted absolute paths of all extractor scripts
	// directly inside dir. An empty result is not an error here; the
	// discovery gate decides what to do with it.
	Discover(dir string) ([]string, error)
}

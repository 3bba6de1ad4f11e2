package ports

import "go.ledgerline.dev/preflight/internal/core/domain"

// RunRecordStore persists the most recent run summary.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RunRecordStore interface {
	// Last returns the previous run's record, or nil if there is none.
	Last() (*domain.RunRecord, error)

	// Put stores the record as the latest run.
	Put(record domain.RunRecord) error
}

package ports

import (
	"context"
	"errors"

	"urltrust/internal/domain"
)

// ErrConflict reports that an insert hit the unique-URL constraint:
// another caller already persisted a record for the same URL.
var ErrConflict = errors.New("check already exists")

// ErrNotFound reports that no record matches the given key.
var ErrNotFound = errors.New("not found")

// CheckRepository stores check results with at-most-one record per
// normalized URL, enforced by the storage layer.
type CheckRepository interface {
	FindByURL(ctx context.Context, url string) (rec domain.CheckRecord, found bool, err error)
	// InsertUnique persists a new record, filling in the store-assigned
	// ID. Returns ErrConflict when a record for rec.URL already exists.
	InsertUnique(ctx context.Context, rec *domain.CheckRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.CheckRecord, error)
	GetByID(ctx context.Context, id string) (domain.CheckRecord, bool, error)
}

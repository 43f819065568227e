package ports

import (
	"context"

	"urltrust/internal/domain"
)

// Checker runs URL checks and serves stored results.
type Checker interface {
	Check(ctx context.Context, rawURL string) (rec domain.CheckRecord, cached bool, err error)
	History(ctx context.Context, limit int) ([]domain.CheckRecord, error)
	Get(ctx context.Context, id string) (domain.CheckRecord, error)
}

// ThreatOracle answers whether a URL is a known threat. Implementations
// fail open: transport errors, timeouts and missing credentials all
// report false rather than surfacing an error into the check path.
type ThreatOracle interface {
	IsThreat(ctx context.Context, url string) bool
}

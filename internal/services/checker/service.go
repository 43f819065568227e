package checker

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"urltrust/internal/domain"
	"urltrust/internal/heuristics"
	"urltrust/internal/ports"
)

// ErrInvalidURL reports input that is empty or not a syntactically
// valid absolute URL. It is the only checker error with no side
// effects: neither the store nor the oracle is touched.
var ErrInvalidURL = errors.New("invalid URL")

const oracleReason = "Flagged by Google Safe Browsing"

type Service struct {
	checks ports.CheckRepository
	oracle ports.ThreatOracle

	// oracleTimeout bounds a single oracle round-trip; expiry degrades
	// to "no signal", never to a failed check.
	oracleTimeout time.Duration
}

func New(checks ports.CheckRepository, oracle ports.ThreatOracle, oracleTimeout time.Duration) *Service {
	if oracleTimeout <= 0 {
		oracleTimeout = 5 * time.Second
	}
	return &Service{checks: checks, oracle: oracle, oracleTimeout: oracleTimeout}
}

// Check normalizes and validates rawURL, returns the cached record when
// one exists, and otherwise scores the URL, consults the oracle,
// resolves a verdict and persists the result. The cached flag is false
// only when this call created the record.
func (s *Service) Check(ctx context.Context, rawURL string) (domain.CheckRecord, bool, error) {
	normalized := strings.TrimSpace(rawURL)
	if err := validate(normalized); err != nil {
		return domain.CheckRecord{}, false, err
	}

	if rec, found, err := s.checks.FindByURL(ctx, normalized); err != nil {
		return domain.CheckRecord{}, false, fmt.Errorf("cache lookup: %w", err)
	} else if found {
		return rec, true, nil
	}

	// Heuristic scoring and the oracle lookup are independent; run them
	// in parallel and combine in the resolver.
	var (
		res    heuristics.Result
		threat bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res = heuristics.Analyze(normalized)
		return nil
	})
	g.Go(func() error {
		octx, cancel := context.WithTimeout(gctx, s.oracleTimeout)
		defer cancel()
		threat = s.oracle.IsThreat(octx, normalized)
		return nil
	})
	_ = g.Wait()

	score, reasons := res.Score, res.Reasons
	if threat {
		score = 100
		reasons = append([]string{oracleReason}, reasons...)
	}

	rec := domain.CheckRecord{
		URL:       normalized,
		Verdict:   heuristics.Resolve(threat, score),
		Score:     score,
		Reasons:   reasons,
		CheckedAt: time.Now().UTC(),
	}

	err := s.checks.InsertUnique(ctx, &rec)
	if errors.Is(err, ports.ErrConflict) {
		// A concurrent first check won the insert race; its record is
		// the one record for this URL, so return it.
		stored, found, ferr := s.checks.FindByURL(ctx, normalized)
		if ferr != nil {
			return domain.CheckRecord{}, false, fmt.Errorf("conflict re-read: %w", ferr)
		}
		if !found {
			return domain.CheckRecord{}, false, fmt.Errorf("conflict re-read: %w", ports.ErrNotFound)
		}
		return stored, true, nil
	}
	if err != nil {
		return domain.CheckRecord{}, false, fmt.Errorf("persist check: %w", err)
	}
	return rec, false, nil
}

// History returns up to limit records, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]domain.CheckRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.checks.ListRecent(ctx, limit)
}

// Get returns one record by store-assigned id, or ports.ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (domain.CheckRecord, error) {
	rec, found, err := s.checks.GetByID(ctx, id)
	if err != nil {
		return domain.CheckRecord{}, err
	}
	if !found {
		return domain.CheckRecord{}, ports.ErrNotFound
	}
	return rec, nil
}

func validate(normalized string) error {
	if normalized == "" {
		return ErrInvalidURL
	}
	u, err := url.Parse(normalized)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidURL
	}
	return nil
}

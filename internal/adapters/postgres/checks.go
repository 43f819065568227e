package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"urltrust/internal/domain"
	"urltrust/internal/ports"
)

// CheckRepository backed by the checks table. The UNIQUE constraint on
// url is the one-record-per-URL invariant; InsertUnique surfaces a
// violation as ports.ErrConflict so the caller can re-read instead of
// failing.

const uniqueViolation = "23505"

func (db *DB) FindByURL(ctx context.Context, url string) (domain.CheckRecord, bool, error) {
	var rec domain.CheckRecord
	err := db.Pool.QueryRow(ctx, `
        SELECT id, url, verdict, score, reasons, checked_at
        FROM checks
        WHERE url = $1
    `, url).Scan(&rec.ID, &rec.URL, &rec.Verdict, &rec.Score, &rec.Reasons, &rec.CheckedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CheckRecord{}, false, nil
	}
	if err != nil {
		return domain.CheckRecord{}, false, err
	}
	return rec, true, nil
}

func (db *DB) InsertUnique(ctx context.Context, rec *domain.CheckRecord) error {
	err := db.Pool.QueryRow(ctx, `
        INSERT INTO checks (url, verdict, score, reasons, checked_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, rec.URL, rec.Verdict, rec.Score, rec.Reasons, rec.CheckedAt).Scan(&rec.ID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ports.ErrConflict
	}
	return err
}

func (db *DB) ListRecent(ctx context.Context, limit int) ([]domain.CheckRecord, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT id, url, verdict, score, reasons, checked_at
        FROM checks
        ORDER BY checked_at DESC
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CheckRecord
	for rows.Next() {
		var rec domain.CheckRecord
		if err := rows.Scan(&rec.ID, &rec.URL, &rec.Verdict, &rec.Score, &rec.Reasons, &rec.CheckedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (db *DB) GetByID(ctx context.Context, id string) (domain.CheckRecord, bool, error) {
	var rec domain.CheckRecord
	err := db.Pool.QueryRow(ctx, `
        SELECT id, url, verdict, score, reasons, checked_at
        FROM checks
        WHERE id = $1
    `, id).Scan(&rec.ID, &rec.URL, &rec.Verdict, &rec.Score, &rec.Reasons, &rec.CheckedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CheckRecord{}, false, nil
	}
	if err != nil {
		return domain.CheckRecord{}, false, err
	}
	return rec, true, nil
}

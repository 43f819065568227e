package domain

import "time"

// Verdict is the final categorical outcome of a URL check.
type Verdict string

const (
	VerdictSafe       Verdict = "safe"
	VerdictSuspicious Verdict = "suspicious"
	VerdictPhishing   Verdict = "phishing"
)

// CheckRecord is the immutable, persisted outcome of one URL check.
// It is created exactly once, at first-check time; repeat checks of the
// same normalized URL return the stored record verbatim.
type CheckRecord struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Verdict   Verdict   `json:"verdict"`
	Score     int       `json:"score"`
	Reasons   []string  `json:"reasons"`
	CheckedAt time.Time `json:"checkedAt"`
}

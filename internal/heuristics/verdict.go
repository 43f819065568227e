package heuristics

import "urltrust/internal/domain"

// Resolve maps the oracle signal and heuristic score to a verdict.
//
// The threshold is a strict > 70: a score of exactly 70 resolves to
// safe. Note this diverges from the user-facing copy, which bands 30-69
// as suspicious and 70+ as phishing; the code-level rule is the
// authoritative one, and heuristics alone can never yield phishing —
// only a positive oracle signal can.
func Resolve(threat bool, score int) domain.Verdict {
	switch {
	case threat:
		return domain.VerdictPhishing
	case score > 70:
		return domain.VerdictSuspicious
	default:
		return domain.VerdictSafe
	}
}

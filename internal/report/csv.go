package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"urltrust/internal/domain"
)

var csvFields = []string{"url", "verdict", "score", "reasons", "checkedAt"}

// WriteCSV renders checks as CSV, one row per record, reasons joined
// with "; ".
func WriteCSV(w io.Writer, checks []domain.CheckRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvFields); err != nil {
		return err
	}
	for _, rec := range checks {
		row := []string{
			rec.URL,
			string(rec.Verdict),
			strconv.Itoa(rec.Score),
			strings.Join(rec.Reasons, "; "),
			rec.CheckedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

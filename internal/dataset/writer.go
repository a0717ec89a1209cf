package dataset

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/spec-kit/support-analytics/internal/domain"
)

// WriteCSV serializes tickets back to CSV with the source column set
// plus the derived resolution-hours column. Raw field values are
// written verbatim, so reloading the export through LoadCSV and Clean
// reproduces the same derived durations.
func WriteCSV(w io.Writer, header []string, tickets []domain.Ticket) error {
	cw := csv.NewWriter(w)

	outHeader := make([]string, 0, len(header)+1)
	outHeader = append(outHeader, header...)
	outHeader = append(outHeader, domain.ColResolutionHours)
	if err := cw.Write(outHeader); err != nil {
		return err
	}

	for i := range tickets {
		t := &tickets[i]
		row := make([]string, len(header)+1)
		copy(row, t.Raw)
		if t.ResolutionHours != nil {
			row[len(header)] = strconv.FormatFloat(*t.ResolutionHours, 'f', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

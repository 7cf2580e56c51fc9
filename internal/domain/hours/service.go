package hours

import "context"

// HoursService computes the hours rollup. Pure read, no mutation.
type HoursService interface {
	// GetMine aggregates the session user's finalized reports.
	GetMine(ctx context.Context) (Summary, error)

	// ExportMine renders the same rollup as an .xlsx workbook.
	ExportMine(ctx context.Context) (content []byte, filename string, err error)
}

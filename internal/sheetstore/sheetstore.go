package sheetstore

import (
	"context"
	"errors"
)

// Judul tab di spreadsheet HR. Keempat tabel logis berbagi satu spreadsheet.
const (
	EmployeeSheet      = "Employees"
	HolidaySheet       = "Holidays"
	LeaveApprovalSheet = "Leave Approvals"
	DocumentSheet      = "Documents"
)

// ErrRowNotFound is returned by lookups when no row matches the key.
var ErrRowNotFound = errors.New("sheetstore: row not found")

// Values is the narrow surface of the Sheets API that repositories consume.
// The real implementation is Client; tests use in-memory fakes.
type Values interface {
	// Get reads a range and returns the cell values as strings.
	// Missing trailing cells are absent from the inner slices.
	Get(ctx context.Context, rng string) ([][]string, error)

	// Append adds one row after the last non-empty row of the range's
	// sheet and returns its 1-based row number.
	Append(ctx context.Context, rng string, row []any) (int, error)

	// Update overwrites exactly the cells covered by rng.
	Update(ctx context.Context, rng string, rows [][]any) error

	// DeleteRow removes the given 1-based row from the named sheet,
	// shifting the rows below it up.
	DeleteRow(ctx context.Context, sheet string, row int) error
}

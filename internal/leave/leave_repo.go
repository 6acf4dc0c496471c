package leave

import (
	"context"
	"strings"
	"time"

	"go-hrms/internal/sheetstore"
)

type Repository interface {
	// FindRow mencari baris cuti berdasarkan (employee, applied_date).
	// Mengembalikan sheetstore.ErrRowNotFound jika tidak ada.
	FindRow(ctx context.Context, employee, appliedDate string) (int, error)
	Append(ctx context.Context, rec Record) (int, error)
	UpdateStatus(ctx context.Context, row int, status string) error
	Details(ctx context.Context, row int) (Record, error)
	ListAll(ctx context.Context) ([]Record, error)
}

type repository struct {
	store sheetstore.Values
}

func NewRepository(store sheetstore.Values) Repository {
	return &repository{store: store}
}

func (r *repository) FindRow(ctx context.Context, employee, appliedDate string) (int, error) {
	rng := sheetstore.SheetRange(sheetstore.LeaveApprovalSheet, colEmployee, colAppliedDate)
	rows, err := r.store.Get(ctx, rng)
	if err != nil {
		return 0, err
	}

	for i, row := range rows {
		if i+1 < firstDataRow || len(row) < 4 {
			continue
		}
		if strings.EqualFold(row[0], employee) && row[3] == appliedDate {
			return i + 1, nil
		}
	}
	return 0, sheetstore.ErrRowNotFound
}

func (r *repository) Append(ctx context.Context, rec Record) (int, error) {
	rng := sheetstore.SheetRange(sheetstore.LeaveApprovalSheet, colCreatedAt, colReason)
	return r.store.Append(ctx, rng, []any{
		time.Now().UTC().Format(time.RFC3339),
		rec.Employee,
		rec.LeaveType,
		rec.Duration,
		rec.AppliedDate,
		rec.Status,
		rec.Reason,
	})
}

func (r *repository) UpdateStatus(ctx context.Context, row int, status string) error {
	rng := sheetstore.Cell(sheetstore.LeaveApprovalSheet, colStatus, row)
	return r.store.Update(ctx, rng, [][]any{{status}})
}

func (r *repository) Details(ctx context.Context, row int) (Record, error) {
	rng := sheetstore.Range(sheetstore.LeaveApprovalSheet, colEmployee, row, colReason, row)
	rows, err := r.store.Get(ctx, rng)
	if err != nil {
		return Record{}, err
	}
	if len(rows) == 0 {
		return Record{}, sheetstore.ErrRowNotFound
	}

	return recordFrom(row, rows[0], 0), nil
}

func (r *repository) ListAll(ctx context.Context) ([]Record, error) {
	rng := sheetstore.SheetRange(sheetstore.LeaveApprovalSheet, colCreatedAt, colReason)
	rows, err := r.store.Get(ctx, rng)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if i+1 < firstDataRow {
			continue
		}
		rec := recordFrom(i+1, row, 1)
		if rec.Employee == "" {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// recordFrom memetakan sel mulai offset kolom employee.
// Details membaca B:G (offset 0), ListAll membaca A:G (offset 1).
func recordFrom(rowNo int, row []string, offset int) Record {
	return Record{
		Row:         rowNo,
		Employee:    cellAt(row, offset),
		LeaveType:   cellAt(row, offset+1),
		Duration:    cellAt(row, offset+2),
		AppliedDate: cellAt(row, offset+3),
		Status:      cellAt(row, offset+4),
		Reason:      cellAt(row, offset+5),
	}
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

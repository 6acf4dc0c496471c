package document

import (
	"context"
	"time"

	"go-hrms/internal/sheetstore"
)

type Repository interface {
	Append(ctx context.Context, rec Record) (int, error)
	ListAll(ctx context.Context) ([]Record, error)
}

type repository struct {
	store sheetstore.Values
}

func NewRepository(store sheetstore.Values) Repository {
	return &repository{store: store}
}

func (r *repository) Append(ctx context.Context, rec Record) (int, error) {
	rng := sheetstore.SheetRange(sheetstore.DocumentSheet, colCreatedAt, colStatus)
	return r.store.Append(ctx, rng, []any{
		time.Now().UTC().Format(time.RFC3339),
		rec.Email,
		rec.DocumentType,
		rec.Reason,
		rec.Status,
	})
}

func (r *repository) ListAll(ctx context.Context) ([]Record, error) {
	rng := sheetstore.SheetRange(sheetstore.DocumentSheet, colCreatedAt, colStatus)
	rows, err := r.store.Get(ctx, rng)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if i+1 < firstDataRow {
			continue
		}
		rec := Record{Row: i + 1}
		rec.Email = cellAt(row, 1)
		rec.DocumentType = cellAt(row, 2)
		rec.Reason = cellAt(row, 3)
		rec.Status = cellAt(row, 4)
		if rec.Email == "" {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

package holiday

import (
	"context"

	"go-hrms/internal/sheetstore"
)

type Repository interface {
	// FindRow mencari baris dengan nama dan tanggal yang sama persis.
	// Mengembalikan sheetstore.ErrRowNotFound jika tidak ada.
	FindRow(ctx context.Context, name, date string) (int, error)
	Append(ctx context.Context, rec Record) (int, error)
	UpdateFields(ctx context.Context, row int, req UpdateHolidayRequest) error
	Delete(ctx context.Context, row int) error
	ListAll(ctx context.Context) ([]Record, error)
}

type repository struct {
	store sheetstore.Values
}

func NewRepository(store sheetstore.Values) Repository {
	return &repository{store: store}
}

func (r *repository) FindRow(ctx context.Context, name, date string) (int, error) {
	rng := sheetstore.SheetRange(sheetstore.HolidaySheet, colName, colDate)
	rows, err := r.store.Get(ctx, rng)
	if err != nil {
		return 0, err
	}

	for i, row := range rows {
		if i+1 < firstDataRow || len(row) < 2 {
			continue
		}
		if row[0] == name && row[1] == date {
			return i + 1, nil
		}
	}
	return 0, sheetstore.ErrRowNotFound
}

func (r *repository) Append(ctx context.Context, rec Record) (int, error) {
	rng := sheetstore.SheetRange(sheetstore.HolidaySheet, colName, colDescription)
	return r.store.Append(ctx, rng, []any{
		rec.Name,
		rec.Date,
		rec.Type,
		rec.Description,
	})
}

func (r *repository) UpdateFields(ctx context.Context, row int, req UpdateHolidayRequest) error {
	cells := map[string]*string{
		colName:        req.Name,
		colDate:        req.Date,
		colType:        req.Type,
		colDescription: req.Description,
	}
	for col, val := range cells {
		if val == nil {
			continue
		}
		rng := sheetstore.Cell(sheetstore.HolidaySheet, col, row)
		if err := r.store.Update(ctx, rng, [][]any{{*val}}); err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, row int) error {
	return r.store.DeleteRow(ctx, sheetstore.HolidaySheet, row)
}

func (r *repository) ListAll(ctx context.Context) ([]Record, error) {
	rng := sheetstore.SheetRange(sheetstore.HolidaySheet, colName, colDescription)
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
		rec.Name = cellAt(row, 0)
		rec.Date = cellAt(row, 1)
		rec.Type = cellAt(row, 2)
		rec.Description = cellAt(row, 3)
		if rec.Name == "" {
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

package employee

import (
	"context"
	"strings"
	"time"

	"go-hrms/internal/sheetstore"
)

type Repository interface {
	// FindRowByEmail mencari baris karyawan (case-insensitive).
	// Mengembalikan sheetstore.ErrRowNotFound jika tidak ada.
	FindRowByEmail(ctx context.Context, email string) (int, error)
	Append(ctx context.Context, rec Record) (int, error)
	UpdateFields(ctx context.Context, row int, req UpdateEmployeeRequest) error
	UpdateStorageIDs(ctx context.Context, row int, photoFileID, baseFolderID string) error
	UpdatePhotoID(ctx context.Context, row int, photoFileID string) error
	StorageIDs(ctx context.Context, row int) (photoFileID, baseFolderID string, err error)
	DisplayName(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, row int) error
	ListAll(ctx context.Context) ([]Record, error)
}

type repository struct {
	store sheetstore.Values
}

func NewRepository(store sheetstore.Values) Repository {
	return &repository{store: store}
}

func (r *repository) FindRowByEmail(ctx context.Context, email string) (int, error) {
	rng := sheetstore.SheetRange(sheetstore.EmployeeSheet, colEmail, colEmail)
	rows, err := r.store.Get(ctx, rng)
	if err != nil {
		return 0, err
	}

	// Linear scan pada kolom email; spreadsheet tidak punya index
	for i, row := range rows {
		if len(row) > 0 && strings.EqualFold(row[0], email) {
			if i+1 < firstDataRow {
				continue // baris header
			}
			return i + 1, nil
		}
	}
	return 0, sheetstore.ErrRowNotFound
}

func (r *repository) Append(ctx context.Context, rec Record) (int, error) {
	rng := sheetstore.SheetRange(sheetstore.EmployeeSheet, colCreatedAt, colFolderID)
	return r.store.Append(ctx, rng, []any{
		time.Now().UTC().Format(time.RFC3339),
		rec.Email,
		rec.Name,
		rec.Position,
		rec.Department,
		rec.Contact,
		rec.JoiningDate,
		rec.PhotoFileID,
		rec.BaseFolderID,
	})
}

func (r *repository) UpdateFields(ctx context.Context, row int, req UpdateEmployeeRequest) error {
	// Hanya sel milik field yang dikirim yang ditulis;
	// sel lain pada baris tidak disentuh.
	cells := map[string]*string{
		colEmail:       req.Email,
		colName:        req.Name,
		colPosition:    req.Position,
		colDepartment:  req.Department,
		colContact:     req.Contact,
		colJoiningDate: req.JoiningDate,
	}
	for col, val := range cells {
		if val == nil {
			continue
		}
		rng := sheetstore.Cell(sheetstore.EmployeeSheet, col, row)
		if err := r.store.Update(ctx, rng, [][]any{{*val}}); err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) UpdateStorageIDs(ctx context.Context, row int, photoFileID, baseFolderID string) error {
	rng := sheetstore.Range(sheetstore.EmployeeSheet, colPhotoFileID, row, colFolderID, row)
	return r.store.Update(ctx, rng, [][]any{{photoFileID, baseFolderID}})
}

func (r *repository) UpdatePhotoID(ctx context.Context, row int, photoFileID string) error {
	rng := sheetstore.Cell(sheetstore.EmployeeSheet, colPhotoFileID, row)
	return r.store.Update(ctx, rng, [][]any{{photoFileID}})
}

func (r *repository) StorageIDs(ctx context.Context, row int) (string, string, error) {
	rng := sheetstore.Range(sheetstore.EmployeeSheet, colPhotoFileID, row, colFolderID, row)
	rows, err := r.store.Get(ctx, rng)
	if err != nil {
		return "", "", err
	}

	var photoFileID, baseFolderID string
	if len(rows) > 0 {
		if len(rows[0]) > 0 {
			photoFileID = rows[0][0]
		}
		if len(rows[0]) > 1 {
			baseFolderID = rows[0][1]
		}
	}
	return photoFileID, baseFolderID, nil
}

func (r *repository) DisplayName(ctx context.Context, email string) (string, error) {
	row, err := r.FindRowByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	rows, err := r.store.Get(ctx, sheetstore.Cell(sheetstore.EmployeeSheet, colName, row))
	if err != nil {
		return "", err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return "", sheetstore.ErrRowNotFound
	}
	return rows[0][0], nil
}

func (r *repository) Delete(ctx context.Context, row int) error {
	return r.store.DeleteRow(ctx, sheetstore.EmployeeSheet, row)
}

func (r *repository) ListAll(ctx context.Context) ([]Record, error) {
	rng := sheetstore.SheetRange(sheetstore.EmployeeSheet, colCreatedAt, colFolderID)
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
		rec.Name = cellAt(row, 2)
		rec.Position = cellAt(row, 3)
		rec.Department = cellAt(row, 4)
		rec.Contact = cellAt(row, 5)
		rec.JoiningDate = cellAt(row, 6)
		rec.PhotoFileID = cellAt(row, 7)
		rec.BaseFolderID = cellAt(row, 8)
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

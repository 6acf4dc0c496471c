package employee_test

import (
	"context"
	"testing"

	"go-hrms/internal/employee"
	"go-hrms/internal/sheetstore"

	"github.com/stretchr/testify/assert"
)

type fakeValues struct {
	getFn       func(ctx context.Context, rng string) ([][]string, error)
	appendFn    func(ctx context.Context, rng string, row []any) (int, error)
	updateFn    func(ctx context.Context, rng string, rows [][]any) error
	deleteRowFn func(ctx context.Context, sheet string, row int) error
}

func (f *fakeValues) Get(ctx context.Context, rng string) ([][]string, error) {
	return f.getFn(ctx, rng)
}

func (f *fakeValues) Append(ctx context.Context, rng string, row []any) (int, error) {
	return f.appendFn(ctx, rng, row)
}

func (f *fakeValues) Update(ctx context.Context, rng string, rows [][]any) error {
	return f.updateFn(ctx, rng, rows)
}

func (f *fakeValues) DeleteRow(ctx context.Context, sheet string, row int) error {
	return f.deleteRowFn(ctx, sheet, row)
}

func TestEmployeeRepository_FindRowByEmail(t *testing.T) {
	ctx := context.Background()

	emailColumn := [][]string{
		{"Email"},
		{"a@x.com"},
		{},
		{"b@x.com"},
	}

	t.Run("match is case-insensitive and one-based", func(t *testing.T) {
		repo := employee.NewRepository(&fakeValues{
			getFn: func(ctx context.Context, rng string) ([][]string, error) {
				assert.Equal(t, "'Employees'!B:B", rng)
				return emailColumn, nil
			},
		})

		row, err := repo.FindRowByEmail(ctx, "B@X.COM")
		assert.NoError(t, err)
		assert.Equal(t, 4, row)
	})

	t.Run("header row never matches", func(t *testing.T) {
		repo := employee.NewRepository(&fakeValues{
			getFn: func(ctx context.Context, rng string) ([][]string, error) {
				return emailColumn, nil
			},
		})

		_, err := repo.FindRowByEmail(ctx, "Email")
		assert.ErrorIs(t, err, sheetstore.ErrRowNotFound)
	})

	t.Run("absent email is not found", func(t *testing.T) {
		repo := employee.NewRepository(&fakeValues{
			getFn: func(ctx context.Context, rng string) ([][]string, error) {
				return emailColumn, nil
			},
		})

		_, err := repo.FindRowByEmail(ctx, "ghost@x.com")
		assert.ErrorIs(t, err, sheetstore.ErrRowNotFound)
	})
}

func TestEmployeeRepository_Append(t *testing.T) {
	ctx := context.Background()

	repo := employee.NewRepository(&fakeValues{
		appendFn: func(ctx context.Context, rng string, row []any) (int, error) {
			assert.Equal(t, "'Employees'!A:I", rng)
			assert.Len(t, row, 9)
			assert.NotEmpty(t, row[0]) // created_at
			assert.Equal(t, "a@x.com", row[1])
			assert.Equal(t, "Ayu", row[2])
			assert.Equal(t, "01-02-2026", row[6])
			assert.Equal(t, "", row[7])
			assert.Equal(t, "", row[8])
			return 6, nil
		},
	})

	row, err := repo.Append(ctx, employee.Record{
		Email:       "a@x.com",
		Name:        "Ayu",
		Position:    "Engineer",
		Department:  "Technology",
		Contact:     "0812000111",
		JoiningDate: "01-02-2026",
	})
	assert.NoError(t, err)
	assert.Equal(t, 6, row)
}

func TestEmployeeRepository_UpdateFields(t *testing.T) {
	ctx := context.Background()
	position := "Lead Engineer"
	contact := "0899000222"

	t.Run("writes only provided cells", func(t *testing.T) {
		written := map[string]any{}
		repo := employee.NewRepository(&fakeValues{
			updateFn: func(ctx context.Context, rng string, rows [][]any) error {
				assert.Len(t, rows, 1)
				assert.Len(t, rows[0], 1)
				written[rng] = rows[0][0]
				return nil
			},
		})

		err := repo.UpdateFields(ctx, 4, employee.UpdateEmployeeRequest{
			Position: &position,
			Contact:  &contact,
		})
		assert.NoError(t, err)
		assert.Equal(t, map[string]any{
			"'Employees'!D4": position,
			"'Employees'!F4": contact,
		}, written)
	})

	t.Run("empty request writes nothing", func(t *testing.T) {
		calls := 0
		repo := employee.NewRepository(&fakeValues{
			updateFn: func(ctx context.Context, rng string, rows [][]any) error {
				calls++
				return nil
			},
		})

		err := repo.UpdateFields(ctx, 4, employee.UpdateEmployeeRequest{})
		assert.NoError(t, err)
		assert.Zero(t, calls)
	})
}

func TestEmployeeRepository_StorageIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("reads H and I of the row", func(t *testing.T) {
		repo := employee.NewRepository(&fakeValues{
			getFn: func(ctx context.Context, rng string) ([][]string, error) {
				assert.Equal(t, "'Employees'!H5:I5", rng)
				return [][]string{{"file-1", "base-1"}}, nil
			},
		})

		photoID, folderID, err := repo.StorageIDs(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, "file-1", photoID)
		assert.Equal(t, "base-1", folderID)
	})

	t.Run("blank cells come back empty", func(t *testing.T) {
		repo := employee.NewRepository(&fakeValues{
			getFn: func(ctx context.Context, rng string) ([][]string, error) {
				return nil, nil
			},
		})

		photoID, folderID, err := repo.StorageIDs(ctx, 5)
		assert.NoError(t, err)
		assert.Empty(t, photoID)
		assert.Empty(t, folderID)
	})
}

func TestEmployeeRepository_UpdateStorageIDs(t *testing.T) {
	ctx := context.Background()

	repo := employee.NewRepository(&fakeValues{
		updateFn: func(ctx context.Context, rng string, rows [][]any) error {
			assert.Equal(t, "'Employees'!H7:I7", rng)
			assert.Equal(t, [][]any{{"file-1", "base-1"}}, rows)
			return nil
		},
	})

	err := repo.UpdateStorageIDs(ctx, 7, "file-1", "base-1")
	assert.NoError(t, err)
}

func TestEmployeeRepository_ListAll(t *testing.T) {
	ctx := context.Background()

	repo := employee.NewRepository(&fakeValues{
		getFn: func(ctx context.Context, rng string) ([][]string, error) {
			assert.Equal(t, "'Employees'!A:I", rng)
			return [][]string{
				{"created_at", "email", "name", "position", "department", "contact", "joining_date", "photo_file_id", "base_folder_id"},
				{"2026-01-01T00:00:00Z", "a@x.com", "Ayu", "Engineer", "Technology", "0812", "01-02-2026", "file-1", "base-1"},
				{"2026-01-02T00:00:00Z", "", "", "", "", "", "", "", ""},
				{"2026-01-03T00:00:00Z", "b@x.com", "Budi", "Analyst"},
			}, nil
		},
	})

	records, err := repo.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, records, 2)

	assert.Equal(t, 2, records[0].Row)
	assert.Equal(t, "a@x.com", records[0].Email)
	assert.Equal(t, "file-1", records[0].PhotoFileID)
	assert.Equal(t, "base-1", records[0].BaseFolderID)

	// Baris pendek tetap terbaca tanpa panic
	assert.Equal(t, 4, records[1].Row)
	assert.Equal(t, "b@x.com", records[1].Email)
	assert.Equal(t, "Analyst", records[1].Position)
	assert.Empty(t, records[1].Contact)
}

func TestEmployeeRepository_DisplayName(t *testing.T) {
	ctx := context.Background()

	repo := employee.NewRepository(&fakeValues{
		getFn: func(ctx context.Context, rng string) ([][]string, error) {
			if rng == "'Employees'!B:B" {
				return [][]string{{"Email"}, {"a@x.com"}}, nil
			}
			assert.Equal(t, "'Employees'!C2", rng)
			return [][]string{{"Ayu Lestari"}}, nil
		},
	})

	name, err := repo.DisplayName(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "Ayu Lestari", name)
}

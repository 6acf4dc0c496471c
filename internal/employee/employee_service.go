package employee

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-hrms/internal/drivestore"
	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/sheetstore"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeListCacheKey = "employees:list"

type Service interface {
	Create(ctx context.Context, form CreateEmployeeForm, photo PhotoUpload) (CreateEmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByEmail(ctx context.Context, email string) (EmployeeResponse, error)
	Update(ctx context.Context, email string, req UpdateEmployeeRequest) (MutationResponse, error)
	Delete(ctx context.Context, email string) (MutationResponse, error)
	Photo(ctx context.Context, email string) (drivestore.File, error)
	ReplacePhoto(ctx context.Context, email string, photo PhotoUpload) (ReplacePhotoResponse, error)
}

type service struct {
	repo   Repository
	files  drivestore.Store
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, files drivestore.Store, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		files:  files,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// Create menjalankan onboarding tiga langkah: append baris, buat folder
// Drive, upload foto, lalu backfill ID ke baris. Tidak ada rollback:
// langkah yang gagal meninggalkan langkah sebelumnya apa adanya.
func (s *service) Create(ctx context.Context, form CreateEmployeeForm, photo PhotoUpload) (CreateEmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", form.Email),
	)

	_, err := s.repo.FindRowByEmail(ctx, form.Email)
	if err == nil {
		s.logger.Warn("create employee duplicate email", zap.String("email", form.Email))
		return CreateEmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists
	}
	if !errors.Is(err, sheetstore.ErrRowNotFound) {
		s.logger.Error("create employee duplicate check failed", zap.Error(err))
		return CreateEmployeeResponse{}, err
	}

	rowNo, err := s.repo.Append(ctx, Record{
		Email:       form.Email,
		Name:        form.Name,
		Position:    form.Position,
		Department:  form.Department,
		Contact:     form.Contact,
		JoiningDate: form.JoiningDate,
	})
	if err != nil {
		s.logger.Error("create employee append failed", zap.Error(err))
		return CreateEmployeeResponse{}, err
	}

	tree, err := s.files.CreateEmployeeFolders(ctx, form.Email)
	if err != nil {
		// Baris sudah ada tanpa folder; recovery manual
		s.logger.Error("create employee folder setup failed",
			zap.Int("row", rowNo),
			zap.Error(err),
		)
		return CreateEmployeeResponse{}, err
	}

	photoID, err := s.files.Upload(ctx, tree.PhotoID, photo.Name, photo.MimeType, photo.Content)
	if err != nil {
		s.logger.Error("create employee photo upload failed",
			zap.Int("row", rowNo),
			zap.Error(err),
		)
		return CreateEmployeeResponse{}, err
	}

	if err := s.repo.UpdateStorageIDs(ctx, rowNo, photoID, tree.BaseID); err != nil {
		s.logger.Error("create employee id backfill failed",
			zap.Int("row", rowNo),
			zap.Error(err),
		)
		return CreateEmployeeResponse{}, err
	}

	s.invalidateListCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("email", form.Email),
		zap.Int("row", rowNo),
	)
	return CreateEmployeeResponse{
		Row:         rowNo,
		FolderID:    tree.BaseID,
		PhotoFileID: photoID,
	}, nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	// Cek Redis dulu; sheet read jauh lebih mahal daripada cache hit
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeListCacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight agar burst GET tidak menghasilkan banyak sheet read
	v, err, _ := s.sf.Do(EmployeeListCacheKey, func() (interface{}, error) {
		records, err := s.repo.ListAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(records)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeListCacheKey, jsonData, 5*time.Minute)
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (EmployeeResponse, error) {
	employees, err := s.GetAll(ctx)
	if err != nil {
		return EmployeeResponse{}, err
	}

	for _, e := range employees {
		if strings.EqualFold(e.Email, email) {
			if e.PhotoFileID != "" {
				e.PhotoURL = drivestore.PublicFileURL(e.PhotoFileID)
			}
			return e, nil
		}
	}
	return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
}

func (s *service) Update(ctx context.Context, email string, req UpdateEmployeeRequest) (MutationResponse, error) {
	s.logger.Debug("update employee requested", zap.String("email", email))

	row, err := s.repo.FindRowByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sheetstore.ErrRowNotFound) {
			return MutationResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("update employee lookup failed", zap.Error(err))
		return MutationResponse{}, err
	}

	// Folder ID dibaca sebelum baris dimutasi
	_, folderID, err := s.repo.StorageIDs(ctx, row)
	if err != nil {
		s.logger.Error("update employee storage id read failed", zap.Error(err))
		return MutationResponse{}, err
	}

	if err := s.repo.UpdateFields(ctx, row, req); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return MutationResponse{}, err
	}

	// Nama folder Drive mengikuti email; rename hanya saat email ikut berubah
	// dan folder memang sudah tercatat
	if req.Email != nil && folderID != "" {
		if err := s.files.RenameFolder(ctx, folderID, *req.Email); err != nil {
			s.logger.Error("update employee folder rename failed",
				zap.String("folder_id", folderID),
				zap.Error(err),
			)
			return MutationResponse{}, err
		}
	}

	s.invalidateListCache(ctx)

	s.logger.Info("update employee success", zap.String("email", email), zap.Int("row", row))
	return MutationResponse{Status: "updated", Row: row}, nil
}

func (s *service) Delete(ctx context.Context, email string) (MutationResponse, error) {
	s.logger.Debug("delete employee requested", zap.String("email", email))

	row, err := s.repo.FindRowByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sheetstore.ErrRowNotFound) {
			return MutationResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("delete employee lookup failed", zap.Error(err))
		return MutationResponse{}, err
	}

	_, folderID, err := s.repo.StorageIDs(ctx, row)
	if err != nil {
		s.logger.Error("delete employee storage id read failed", zap.Error(err))
		return MutationResponse{}, err
	}

	// Urutan: baris dulu, folder belakangan. Crash di antaranya
	// meninggalkan folder yatim, bukan baris yang menunjuk folder mati.
	if err := s.repo.Delete(ctx, row); err != nil {
		s.logger.Error("delete employee row failed", zap.Error(err))
		return MutationResponse{}, err
	}

	if folderID != "" {
		if err := s.files.DeleteFolder(ctx, folderID); err != nil {
			s.logger.Error("delete employee folder failed",
				zap.String("folder_id", folderID),
				zap.Error(err),
			)
			return MutationResponse{}, err
		}
	}

	s.invalidateListCache(ctx)

	s.logger.Info("delete employee success", zap.String("email", email), zap.Int("row", row))
	return MutationResponse{Status: "deleted", Row: row}, nil
}

func (s *service) Photo(ctx context.Context, email string) (drivestore.File, error) {
	row, err := s.repo.FindRowByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sheetstore.ErrRowNotFound) {
			return drivestore.File{}, employeeerrors.ErrEmployeeNotFound
		}
		return drivestore.File{}, err
	}

	photoID, _, err := s.repo.StorageIDs(ctx, row)
	if err != nil {
		return drivestore.File{}, err
	}
	if photoID == "" {
		return drivestore.File{}, employeeerrors.ErrPhotoNotSet
	}

	return s.files.Download(ctx, photoID)
}

func (s *service) ReplacePhoto(ctx context.Context, email string, photo PhotoUpload) (ReplacePhotoResponse, error) {
	s.logger.Debug("replace photo requested", zap.String("email", email))

	row, err := s.repo.FindRowByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sheetstore.ErrRowNotFound) {
			return ReplacePhotoResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return ReplacePhotoResponse{}, err
	}

	oldPhotoID, folderID, err := s.repo.StorageIDs(ctx, row)
	if err != nil {
		return ReplacePhotoResponse{}, err
	}
	if folderID == "" {
		// Tanpa folder dasar tidak ada tempat menaruh foto
		return ReplacePhotoResponse{}, employeeerrors.ErrFolderNotSet
	}

	photoFolderID, err := s.files.GetOrCreateSubfolder(ctx, folderID, drivestore.ProfilePhotoFolder)
	if err != nil {
		s.logger.Error("replace photo subfolder lookup failed", zap.Error(err))
		return ReplacePhotoResponse{}, err
	}

	// Hapus foto lama best-effort; gagal hapus tidak memblokir upload baru
	if oldPhotoID != "" {
		if err := s.files.DeleteFile(ctx, oldPhotoID); err != nil {
			s.logger.Warn("replace photo old file delete failed",
				zap.String("photo_file_id", oldPhotoID),
				zap.Error(err),
			)
		}
	}

	newPhotoID, err := s.files.Upload(ctx, photoFolderID, photo.Name, photo.MimeType, photo.Content)
	if err != nil {
		s.logger.Error("replace photo upload failed", zap.Error(err))
		return ReplacePhotoResponse{}, err
	}

	if err := s.repo.UpdatePhotoID(ctx, row, newPhotoID); err != nil {
		s.logger.Error("replace photo id backfill failed", zap.Error(err))
		return ReplacePhotoResponse{}, err
	}

	s.invalidateListCache(ctx)

	s.logger.Info("replace photo success",
		zap.String("email", email),
		zap.String("photo_file_id", newPhotoID),
	)
	return ReplacePhotoResponse{Status: "photo updated", PhotoFileID: newPhotoID}, nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeListCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee list cache",
			zap.Error(err),
			zap.String("key", EmployeeListCacheKey),
		)
	}
}

func mapToResponse(rec Record) EmployeeResponse {
	return EmployeeResponse{
		Row:          rec.Row,
		Email:        rec.Email,
		Name:         rec.Name,
		Position:     rec.Position,
		Department:   rec.Department,
		Contact:      rec.Contact,
		JoiningDate:  rec.JoiningDate,
		PhotoFileID:  rec.PhotoFileID,
		BaseFolderID: rec.BaseFolderID,
	}
}

func mapToListResponse(records []Record) []EmployeeResponse {
	res := make([]EmployeeResponse, len(records))
	for i, rec := range records {
		res[i] = mapToResponse(rec)
	}
	return res
}

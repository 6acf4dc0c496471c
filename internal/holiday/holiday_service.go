package holiday

import (
	"context"
	"errors"
	"time"

	holidayerrors "go-hrms/internal/holiday/errors"
	"go-hrms/internal/sheetstore"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateHolidayRequest) (StatusResponse, error)
	GetAll(ctx context.Context) ([]HolidayResponse, error)
	Update(ctx context.Context, name, date string, req UpdateHolidayRequest) (StatusResponse, error)
	Delete(ctx context.Context, name, date string) (StatusResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateHolidayRequest) (StatusResponse, error) {
	s.logger.Debug("create holiday requested",
		zap.String("name", req.Name),
		zap.String("date", req.Date),
	)

	if _, err := time.Parse(DateLayout, req.Date); err != nil {
		s.logger.Warn("create holiday invalid date", zap.String("date", req.Date))
		return StatusResponse{}, holidayerrors.ErrInvalidDateFormat
	}

	// Duplicate check pada kunci komposit (name, date);
	// check-then-append tidak atomik terhadap spreadsheet
	_, err := s.repo.FindRow(ctx, req.Name, req.Date)
	if err == nil {
		s.logger.Warn("create holiday duplicate",
			zap.String("name", req.Name),
			zap.String("date", req.Date),
		)
		return StatusResponse{}, holidayerrors.ErrHolidayAlreadyExists
	}
	if !errors.Is(err, sheetstore.ErrRowNotFound) {
		s.logger.Error("create holiday duplicate check failed", zap.Error(err))
		return StatusResponse{}, err
	}

	if _, err := s.repo.Append(ctx, Record{
		Name:        req.Name,
		Date:        req.Date,
		Type:        req.Type,
		Description: req.Description,
	}); err != nil {
		s.logger.Error("create holiday append failed", zap.Error(err))
		return StatusResponse{}, err
	}

	s.logger.Info("create holiday success", zap.String("name", req.Name))
	return StatusResponse{Status: "holiday added"}, nil
}

func (s *service) GetAll(ctx context.Context) ([]HolidayResponse, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("get all holidays failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(records), nil
}

func (s *service) Update(ctx context.Context, name, date string, req UpdateHolidayRequest) (StatusResponse, error) {
	s.logger.Debug("update holiday requested",
		zap.String("name", name),
		zap.String("date", date),
	)

	if req.Date != nil {
		if _, err := time.Parse(DateLayout, *req.Date); err != nil {
			return StatusResponse{}, holidayerrors.ErrInvalidDateFormat
		}
	}

	row, err := s.repo.FindRow(ctx, name, date)
	if err != nil {
		if errors.Is(err, sheetstore.ErrRowNotFound) {
			return StatusResponse{}, holidayerrors.ErrHolidayNotFound
		}
		s.logger.Error("update holiday lookup failed", zap.Error(err))
		return StatusResponse{}, err
	}

	if err := s.repo.UpdateFields(ctx, row, req); err != nil {
		s.logger.Error("update holiday persist failed", zap.Error(err))
		return StatusResponse{}, err
	}

	s.logger.Info("update holiday success", zap.String("name", name), zap.Int("row", row))
	return StatusResponse{Status: "holiday updated"}, nil
}

func (s *service) Delete(ctx context.Context, name, date string) (StatusResponse, error) {
	s.logger.Debug("delete holiday requested",
		zap.String("name", name),
		zap.String("date", date),
	)

	row, err := s.repo.FindRow(ctx, name, date)
	if err != nil {
		if errors.Is(err, sheetstore.ErrRowNotFound) {
			return StatusResponse{}, holidayerrors.ErrHolidayNotFound
		}
		s.logger.Error("delete holiday lookup failed", zap.Error(err))
		return StatusResponse{}, err
	}

	if err := s.repo.Delete(ctx, row); err != nil {
		s.logger.Error("delete holiday failed", zap.Error(err))
		return StatusResponse{}, err
	}

	s.logger.Info("delete holiday success", zap.String("name", name), zap.Int("row", row))
	return StatusResponse{Status: "holiday deleted"}, nil
}

func mapToListResponse(records []Record) []HolidayResponse {
	res := make([]HolidayResponse, len(records))
	for i, rec := range records {
		res[i] = HolidayResponse{
			Row:         rec.Row,
			Name:        rec.Name,
			Date:        rec.Date,
			Type:        rec.Type,
			Description: rec.Description,
		}
	}
	return res
}

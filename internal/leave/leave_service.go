package leave

import (
	"context"
	"errors"
	"strings"
	"time"

	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/notifier"
	"go-hrms/internal/sheetstore"

	"go.uber.org/zap"
)

// EmployeeDirectory resolve email karyawan ke nama display untuk isi email.
type EmployeeDirectory interface {
	DisplayName(ctx context.Context, email string) (string, error)
}

type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest) (CreateLeaveResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	Decide(ctx context.Context, employee, appliedDate string, req DecideLeaveRequest) (DecideLeaveResponse, error)
}

type service struct {
	repo      Repository
	directory EmployeeDirectory
	mailer    notifier.Notifier
	logger    *zap.Logger
}

func NewService(repo Repository, directory EmployeeDirectory, mailer notifier.Notifier, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		repo:      repo,
		directory: directory,
		mailer:    mailer,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req CreateLeaveRequest) (CreateLeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.String("employee", req.Employee),
		zap.String("applied_date", req.AppliedDate),
	)

	appliedDate := req.AppliedDate
	if appliedDate == "" {
		appliedDate = time.Now().Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, appliedDate); err != nil {
		s.logger.Warn("create leave invalid applied_date", zap.String("applied_date", appliedDate))
		return CreateLeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}

	// Satu karyawan maksimal satu pengajuan per applied_date;
	// check-then-append tidak atomik terhadap spreadsheet
	_, err := s.repo.FindRow(ctx, req.Employee, appliedDate)
	if err == nil {
		s.logger.Warn("create leave duplicate for date",
			zap.String("employee", req.Employee),
			zap.String("applied_date", appliedDate),
		)
		return CreateLeaveResponse{}, leaveerrors.ErrLeaveAlreadyExists
	}
	if !errors.Is(err, sheetstore.ErrRowNotFound) {
		s.logger.Error("create leave duplicate check failed", zap.Error(err))
		return CreateLeaveResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = StatusPending
	}

	row, err := s.repo.Append(ctx, Record{
		Employee:    req.Employee,
		LeaveType:   req.LeaveType,
		Duration:    req.Duration,
		AppliedDate: appliedDate,
		Status:      status,
		Reason:      req.Reason,
	})
	if err != nil {
		s.logger.Error("create leave append failed", zap.Error(err))
		return CreateLeaveResponse{}, err
	}

	s.logger.Info("create leave success",
		zap.String("employee", req.Employee),
		zap.Int("row", row),
	)
	return CreateLeaveResponse{Row: row, Status: strings.ToLower(status)}, nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveResponse, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("get all leaves failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(records), nil
}

// Decide mengubah status Pending menjadi Approved/Rejected, lalu mengirim
// email notifikasi best-effort. Status sudah committed sebelum notifikasi;
// kegagalan kirim hanya dicatat, tidak pernah menggagalkan request.
func (s *service) Decide(ctx context.Context, employee, appliedDate string, req DecideLeaveRequest) (DecideLeaveResponse, error) {
	s.logger.Debug("decide leave requested",
		zap.String("employee", employee),
		zap.String("applied_date", appliedDate),
		zap.String("status", req.Status),
	)

	row, err := s.repo.FindRow(ctx, employee, appliedDate)
	if err != nil {
		if errors.Is(err, sheetstore.ErrRowNotFound) {
			return DecideLeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		s.logger.Error("decide leave lookup failed", zap.Error(err))
		return DecideLeaveResponse{}, err
	}

	det, err := s.repo.Details(ctx, row)
	if err != nil {
		s.logger.Error("decide leave detail read failed", zap.Error(err))
		return DecideLeaveResponse{}, err
	}
	// Keputusan bersifat terminal: tidak ada jalan kembali ke Pending
	if det.Status != "" && !strings.EqualFold(det.Status, StatusPending) {
		s.logger.Warn("decide leave already decided",
			zap.String("employee", employee),
			zap.String("current_status", det.Status),
		)
		return DecideLeaveResponse{}, leaveerrors.ErrLeaveAlreadyDecided
	}

	if err := s.repo.UpdateStatus(ctx, row, req.Status); err != nil {
		s.logger.Error("decide leave status update failed", zap.Error(err))
		return DecideLeaveResponse{}, err
	}

	notified := s.notifyDecision(ctx, det, req.Status) == nil

	s.logger.Info("decide leave success",
		zap.String("employee", employee),
		zap.Int("row", row),
		zap.String("status", req.Status),
		zap.Bool("notified", notified),
	)
	return DecideLeaveResponse{Row: row, Status: req.Status, Notified: notified}, nil
}

func (s *service) notifyDecision(ctx context.Context, det Record, status string) error {
	name, err := s.directory.DisplayName(ctx, det.Employee)
	if err != nil {
		// Fallback ke email jika nama tidak ketemu
		s.logger.Warn("leave decision name lookup failed",
			zap.String("employee", det.Employee),
			zap.Error(err),
		)
		name = det.Employee
	}

	if err := s.mailer.SendLeaveStatus(ctx, notifier.LeaveStatusNotification{
		To:           det.Employee,
		EmployeeName: name,
		LeaveType:    det.LeaveType,
		Duration:     det.Duration,
		Status:       status,
	}); err != nil {
		s.logger.Warn("leave status email failed",
			zap.String("employee", det.Employee),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func mapToListResponse(records []Record) []LeaveResponse {
	res := make([]LeaveResponse, len(records))
	for i, rec := range records {
		res[i] = LeaveResponse{
			Row:         rec.Row,
			Employee:    rec.Employee,
			LeaveType:   rec.LeaveType,
			Duration:    rec.Duration,
			AppliedDate: rec.AppliedDate,
			Status:      rec.Status,
			Reason:      rec.Reason,
		}
	}
	return res
}

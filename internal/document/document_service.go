package document

import (
	"context"
	"strings"

	"go-hrms/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateDocumentRequest) (CreateDocumentResponse, error)
	GetAll(ctx context.Context) ([]DocumentResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	return &service{repo: repo, logger: l}
}

// Create selalu memaksa status awal Pending; tidak ada duplicate check
// untuk request dokumen.
func (s *service) Create(ctx context.Context, req CreateDocumentRequest) (CreateDocumentResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	l.Debug("create document request",
		zap.String("email", req.Email),
		zap.String("document_type", req.DocumentType),
	)

	row, err := s.repo.Append(ctx, Record{
		Email:        req.Email,
		DocumentType: req.DocumentType,
		Reason:       req.Reason,
		Status:       StatusPending,
	})
	if err != nil {
		l.Error("create document request append failed", zap.Error(err))
		return CreateDocumentResponse{}, err
	}

	l.Info("create document request success",
		zap.String("email", req.Email),
		zap.Int("row", row),
	)
	return CreateDocumentResponse{Row: row, Status: strings.ToLower(StatusPending)}, nil
}

func (s *service) GetAll(ctx context.Context) ([]DocumentResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	records, err := s.repo.ListAll(ctx)
	if err != nil {
		l.Error("get all document requests failed", zap.Error(err))
		return nil, err
	}

	res := make([]DocumentResponse, len(records))
	for i, rec := range records {
		res[i] = DocumentResponse{
			Row:          rec.Row,
			Email:        rec.Email,
			DocumentType: rec.DocumentType,
			Reason:       rec.Reason,
			Status:       rec.Status,
		}
	}
	return res, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"kas-dashboard-svc/internal/aggregate"
	"kas-dashboard-svc/internal/export"
	"kas-dashboard-svc/internal/models"
	"kas-dashboard-svc/internal/pagination"
	"kas-dashboard-svc/internal/repository"
	"kas-dashboard-svc/internal/resource"
	"kas-dashboard-svc/pkg/logger"
)

// RekapanView is one client-side page of the payment recap
type RekapanView struct {
	Periodes   []models.Periode                      `json:"periodes" swaggertype:"array,string"`
	Labels     map[models.Periode]string             `json:"labels" swaggertype:"object,string"`
	Page       pagination.Page[aggregate.RekapanRow] `json:"page"`
	PaidCounts map[string]int                        `json:"paidCounts"`
	LoadedAt   *time.Time                            `json:"loadedAt,omitempty"`
}

// ExportResult is a rendered export file
type ExportResult struct {
	DocumentID  string
	FileName    string
	ContentType string
	Data        []byte
}

// RekapanService interface defines payment recap methods
type RekapanService interface {
	GetRekapan(ctx context.Context, page, perPage int) (*RekapanView, error)
	Export(ctx context.Context, format export.Format) (*ExportResult, error)
	SaveSnapshot(ctx context.Context, dir string) (string, error)
	ListExports(ctx context.Context, page, limit int) ([]models.ExportLog, int64, error)
	GetExportRun(ctx context.Context, documentID string) ([]models.ExportLog, error)
}

// rekapanService implements RekapanService interface
type rekapanService struct {
	members    MemberAPI
	invoices   InvoiceAPI
	exportRepo repository.ExportLogRepository
	location   *time.Location
	logger     *logger.Logger
	now        func() time.Time

	guard    resource.Guard
	mu       sync.RWMutex
	last     *aggregate.Rekapan
	loadedAt time.Time
}

// NewRekapanService creates a new rekapan service
func NewRekapanService(members MemberAPI, invoices InvoiceAPI, exportRepo repository.ExportLogRepository, location *time.Location, logger *logger.Logger) RekapanService {
	if location == nil {
		location = time.Local
	}
	return &rekapanService{
		members:    members,
		invoices:   invoices,
		exportRepo: exportRepo,
		location:   location,
		logger:     logger,
		now:        time.Now,
	}
}

// GetRekapan rebuilds the recap and returns a 1-indexed page of it. When a rebuild is
// already running the last built recap is returned with resource.ErrLoadInFlight.
func (s *rekapanService) GetRekapan(ctx context.Context, page, perPage int) (*RekapanView, error) {
	r, err := s.load(ctx)
	if err != nil {
		if errors.Is(err, resource.ErrLoadInFlight) {
			if last, at := s.lastBuilt(); last != nil {
				return s.view(*last, at, page, perPage), err
			}
		}
		return nil, err
	}
	_, at := s.lastBuilt()
	return s.view(r, at, page, perPage), nil
}

// Export builds a fresh recap in format and records the run in the export history
func (s *rekapanService) Export(ctx context.Context, format export.Format) (*ExportResult, error) {
	fileName := export.FileName(s.now().In(s.location), format)
	data, documentID, r, err := s.render(ctx, string(format), format, fileName)
	if err != nil {
		return nil, err
	}
	s.succeed(ctx, documentID, string(format), fileName, r)
	return &ExportResult{
		DocumentID:  documentID,
		FileName:    fileName,
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}

// SaveSnapshot writes an XLSX recap into dir and returns its path
func (s *rekapanService) SaveSnapshot(ctx context.Context, dir string) (string, error) {
	fileName := export.FileName(s.now().In(s.location), export.FormatXLSX)
	data, documentID, r, err := s.render(ctx, models.ExportTypeSnapshot, export.FormatXLSX, fileName)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, fileName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.record(ctx, documentID, models.ExportTypeSnapshot, fileName, models.ExportStatusFailed, err.Error(), r)
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.record(ctx, documentID, models.ExportTypeSnapshot, fileName, models.ExportStatusFailed, err.Error(), r)
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	s.succeed(ctx, documentID, models.ExportTypeSnapshot, fileName, r)
	return path, nil
}

// ListExports returns one page of the export history, newest first
func (s *rekapanService) ListExports(ctx context.Context, page, limit int) ([]models.ExportLog, int64, error) {
	logs, total, err := s.exportRepo.ListExportLogs(ctx, page, limit)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list export history")
		return nil, 0, err
	}
	return logs, total, nil
}

// GetExportRun returns every history row of one export run, oldest first
func (s *rekapanService) GetExportRun(ctx context.Context, documentID string) ([]models.ExportLog, error) {
	if documentID == "" {
		return nil, newValidationError("documentId", "document id is required")
	}
	run, err := s.exportRepo.ListByDocumentID(ctx, documentID)
	if err != nil {
		s.logger.WithError(err).WithField("document_id", documentID).Error("Failed to get export run")
		return nil, err
	}
	if len(run) == 0 {
		return nil, ErrExportNotFound
	}
	return run, nil
}

// render loads the recap and renders it. It writes the START row, and the FAILED row
// when it fails; the caller records SUCCESS after its own last step.
func (s *rekapanService) render(ctx context.Context, exportType string, format export.Format, fileName string) ([]byte, string, aggregate.Rekapan, error) {
	documentID := uuid.New().String()
	s.record(ctx, documentID, exportType, fileName, models.ExportStatusStart, "Export started", aggregate.Rekapan{})

	r, err := s.load(ctx)
	if err != nil {
		s.record(ctx, documentID, exportType, fileName, models.ExportStatusFailed, err.Error(), aggregate.Rekapan{})
		return nil, documentID, r, err
	}

	data, err := export.Build(format, r)
	if err != nil {
		s.record(ctx, documentID, exportType, fileName, models.ExportStatusFailed, err.Error(), r)
		return nil, documentID, r, fmt.Errorf("failed to build %s export: %w", format, err)
	}
	return data, documentID, r, nil
}

func (s *rekapanService) succeed(ctx context.Context, documentID, exportType, fileName string, r aggregate.Rekapan) {
	s.record(ctx, documentID, exportType, fileName, models.ExportStatusSuccess, "Export completed", r)
	s.logger.WithFields(map[string]interface{}{
		"document_id": documentID,
		"export_type": exportType,
		"file_name":   fileName,
		"rows":        len(r.Rows),
		"periods":     len(r.Periodes),
	}).Info("Rekapan exported successfully")
}

// load fetches members and invoices concurrently and builds the recap, one load at a time
func (s *rekapanService) load(ctx context.Context) (aggregate.Rekapan, error) {
	var r aggregate.Rekapan
	err := s.guard.Do(ctx, func(ctx context.Context) error {
		var (
			members  []models.Member
			invoices []models.Invoice
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			members, err = s.members.ListMembers(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			invoices, err = s.invoices.ListInvoices(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		r = aggregate.BuildRekapan(members, invoices)

		s.mu.Lock()
		s.last = &r
		s.loadedAt = s.now()
		s.mu.Unlock()
		return nil
	})
	if err != nil && !errors.Is(err, resource.ErrLoadInFlight) {
		s.logger.WithError(err).Error("Failed to load rekapan")
	}
	return r, err
}

func (s *rekapanService) lastBuilt() (*aggregate.Rekapan, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.loadedAt
}

func (s *rekapanService) view(r aggregate.Rekapan, loadedAt time.Time, page, perPage int) *RekapanView {
	labels := make(map[models.Periode]string, len(r.Periodes))
	for _, p := range r.Periodes {
		labels[p] = p.Label()
	}

	pg := pagination.Slice(r.Rows, page, perPage)
	paid := make(map[string]int, len(pg.Items))
	for _, row := range pg.Items {
		paid[row.MemberID] = row.PaidPeriods(r.Periodes)
	}

	v := &RekapanView{
		Periodes:   r.Periodes,
		Labels:     labels,
		Page:       pg,
		PaidCounts: paid,
	}
	if !loadedAt.IsZero() {
		v.LoadedAt = &loadedAt
	}
	return v
}

// record writes one export history row. Failures to write history are logged only.
func (s *rekapanService) record(ctx context.Context, documentID, exportType, fileName, status, message string, r aggregate.Rekapan) {
	entry := &models.ExportLog{
		DocumentID:  documentID,
		ExportType:  exportType,
		FileName:    fileName,
		RowCount:    len(r.Rows),
		PeriodCount: len(r.Periodes),
		Status:      status,
		Message:     message,
	}
	if err := s.exportRepo.CreateExportLog(ctx, entry); err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"document_id": documentID,
			"status":      status,
		}).Error("Failed to record export history")
	}
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"kas-dashboard-svc/internal/models"
)

// ExportLogRepository defines the interface for export history data operations
type ExportLogRepository interface {
	CreateExportLog(ctx context.Context, log *models.ExportLog) error
	ListExportLogs(ctx context.Context, page, limit int) ([]models.ExportLog, int64, error)
	ListByDocumentID(ctx context.Context, documentID string) ([]models.ExportLog, error)
}

// exportLogRepository implements ExportLogRepository
type exportLogRepository struct {
	db *gorm.DB
}

// NewExportLogRepository creates a new instance of ExportLogRepository
func NewExportLogRepository(db *gorm.DB) ExportLogRepository {
	return &exportLogRepository{
		db: db,
	}
}

// CreateExportLog creates a new export log record
func (r *exportLogRepository) CreateExportLog(ctx context.Context, log *models.ExportLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// ListExportLogs returns one page of the history, newest first. page is 1-indexed.
func (r *exportLogRepository) ListExportLogs(ctx context.Context, page, limit int) ([]models.ExportLog, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ExportLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.ExportLog
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// ListByDocumentID returns every record of one export run in insertion order
func (r *exportLogRepository) ListByDocumentID(ctx context.Context, documentID string) ([]models.ExportLog, error) {
	var logs []models.ExportLog
	err := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("id ASC").
		Find(&logs).Error
	return logs, err
}

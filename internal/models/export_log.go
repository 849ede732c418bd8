package models

import (
	"time"
)

// Export types recorded in the export history
const (
	ExportTypeCSV      = "csv"
	ExportTypeXLSX     = "xlsx"
	ExportTypeSnapshot = "snapshot"
)

// Export statuses recorded in the export history
const (
	ExportStatusStart   = "START"
	ExportStatusSuccess = "SUCCESS"
	ExportStatusFailed  = "FAILED"
)

// ExportLog represents the export_logs table
type ExportLog struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	DocumentID  string    `json:"document_id" gorm:"column:document_id;size:36;index"`
	ExportType  string    `json:"export_type" gorm:"column:export_type;size:16"`
	FileName    string    `json:"file_name" gorm:"column:file_name"`
	RowCount    int       `json:"row_count" gorm:"column:row_count"`
	PeriodCount int       `json:"period_count" gorm:"column:period_count"`
	Status      string    `json:"status" gorm:"column:status;size:16"`
	Message     string    `json:"message" gorm:"column:message"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName sets the insert table name for ExportLog
func (ExportLog) TableName() string {
	return "export_logs"
}

package service

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"kas-dashboard-svc/internal/aggregate"
	"kas-dashboard-svc/internal/models"
	"kas-dashboard-svc/internal/pagination"
	"kas-dashboard-svc/pkg/logger"
)

// CreateInvoiceRequest is the invoice form. Periode accepts YYYY-MM or MMYYYY.
type CreateInvoiceRequest struct {
	MemberID string `json:"memberId" example:"m1"`
	Periode  string `json:"periode" example:"2025-01"`
	Amount   int64  `json:"amount" example:"50000"`
}

// InvoiceList is one client-side page of the invoice table with counters over all invoices
type InvoiceList struct {
	Page   pagination.Page[models.Invoice] `json:"page"`
	Counts aggregate.InvoiceCounts         `json:"counts"`
}

// allowedProofExtensions are the accepted payment proof file types
var allowedProofExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// InvoiceService interface defines invoice management methods
type InvoiceService interface {
	ListInvoices(ctx context.Context, query string, page, perPage int) (*InvoiceList, error)
	GetInvoice(ctx context.Context, id string) (*models.Invoice, error)
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*models.Invoice, error)
	ApproveInvoice(ctx context.Context, id string) (*models.Invoice, error)
	UploadPaymentProof(ctx context.Context, id, filename string, content io.Reader) (*models.Invoice, error)
}

// invoiceService implements InvoiceService interface
type invoiceService struct {
	api     InvoiceAPI
	members MemberAPI
	logger  *logger.Logger
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(api InvoiceAPI, members MemberAPI, logger *logger.Logger) InvoiceService {
	return &invoiceService{
		api:     api,
		members: members,
		logger:  logger,
	}
}

// ListInvoices fetches every invoice and slices the filtered list. page is 1-indexed.
func (s *invoiceService) ListInvoices(ctx context.Context, query string, page, perPage int) (*InvoiceList, error) {
	invoices, err := s.api.ListInvoices(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list invoices")
		return nil, err
	}

	filtered := aggregate.FilterInvoices(invoices, query)
	return &InvoiceList{
		Page:   pagination.Slice(filtered, page, perPage),
		Counts: aggregate.CountInvoices(invoices),
	}, nil
}

// GetInvoice gets an invoice by id
func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	if strings.TrimSpace(id) == "" {
		return nil, newValidationError("id", "invoice id is required")
	}
	return s.api.GetInvoice(ctx, id)
}

// CreateInvoice validates the form and creates an unpaid invoice for an active member
func (s *invoiceService) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*models.Invoice, error) {
	memberID := strings.TrimSpace(req.MemberID)
	if memberID == "" {
		return nil, newValidationError("memberId", "memberId is required")
	}
	if strings.TrimSpace(req.Periode) == "" {
		return nil, newValidationError("periode", "periode is required")
	}
	periode, err := models.ParsePeriode(req.Periode)
	if err != nil {
		return nil, newValidationError("periode", err.Error())
	}
	if req.Amount < 0 {
		return nil, newValidationError("amount", "amount must not be negative")
	}

	member, err := s.members.GetMember(ctx, memberID)
	if err != nil {
		s.logger.WithError(err).WithField("member_id", memberID).Error("Failed to get invoice member")
		return nil, err
	}
	if !member.IsActive() {
		return nil, newValidationError("memberId", "member is not active")
	}

	amount := req.Amount
	if amount == 0 {
		amount = models.DefaultInvoiceAmount
	}

	invoice, err := s.api.CreateInvoice(ctx, models.InvoiceInput{
		MemberID:   member.ID,
		MemberName: member.Nama,
		Periode:    periode,
		Amount:     amount,
		Status:     models.InvoiceUnpaid,
	})
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"member_id": memberID,
			"periode":   periode,
		}).Error("Failed to create invoice")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"invoice_id": invoice.ID,
		"member_id":  memberID,
		"periode":    periode,
		"amount":     amount,
	}).Info("Invoice created successfully")
	return invoice, nil
}

// ApproveInvoice marks an invoice as paid
func (s *invoiceService) ApproveInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	if strings.TrimSpace(id) == "" {
		return nil, newValidationError("id", "invoice id is required")
	}

	invoice, err := s.api.ApproveInvoice(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("invoice_id", id).Error("Failed to approve invoice")
		return nil, err
	}

	s.logger.WithField("invoice_id", id).Info("Invoice approved successfully")
	return invoice, nil
}

// UploadPaymentProof forwards a proof of payment for an invoice
func (s *invoiceService) UploadPaymentProof(ctx context.Context, id, filename string, content io.Reader) (*models.Invoice, error) {
	if strings.TrimSpace(id) == "" {
		return nil, newValidationError("id", "invoice id is required")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedProofExtensions[ext] {
		return nil, newValidationError("file", "file must be jpg, jpeg, png or pdf")
	}

	invoice, err := s.api.UploadPaymentProof(ctx, id, filepath.Base(filename), content)
	if err != nil {
		s.logger.WithError(err).WithField("invoice_id", id).Error("Failed to upload payment proof")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"invoice_id": id,
		"file_name":  filename,
	}).Info("Payment proof uploaded successfully")
	return invoice, nil
}

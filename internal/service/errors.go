package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"kas-dashboard-svc/internal/kasapi"
	"kas-dashboard-svc/internal/models"
)

// ValidationError is returned for input rejected before any remote request is made
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ErrExportNotFound is returned when no history row carries the requested document id
var ErrExportNotFound = errors.New("export run not found")

// IsValidationError reports whether err is or wraps a *ValidationError
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// AuthAPI is the part of the kas API used for the session lifecycle
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*kasapi.LoginResponse, error)
	Logout(ctx context.Context) (*kasapi.LogoutResponse, error)
}

// MemberAPI is the part of the kas API used for members
type MemberAPI interface {
	ListMembers(ctx context.Context) ([]models.Member, error)
	GetMember(ctx context.Context, id string) (*models.Member, error)
	CreateMember(ctx context.Context, in models.MemberInput) (*models.Member, error)
	UpdateMember(ctx context.Context, id string, in models.MemberInput) (*models.Member, error)
	DeleteMember(ctx context.Context, id string) error
}

// InvoiceAPI is the part of the kas API used for invoices
type InvoiceAPI interface {
	ListInvoices(ctx context.Context) ([]models.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*models.Invoice, error)
	CreateInvoice(ctx context.Context, in models.InvoiceInput) (*models.Invoice, error)
	ApproveInvoice(ctx context.Context, id string) (*models.Invoice, error)
	UploadPaymentProof(ctx context.Context, id, filename string, content io.Reader) (*models.Invoice, error)
}

// NotificationAPI is the part of the kas API used for notifications
type NotificationAPI interface {
	ListNotifications(ctx context.Context, page, size int) (*models.PaginatedResponse[models.Notification], error)
	NotificationStats(ctx context.Context) (*models.NotificationStats, error)
}

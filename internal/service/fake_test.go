package service

import (
	"context"
	"io"
	"net/http"
	"sync"
	"sync/atomic"

	"kas-dashboard-svc/internal/kasapi"
	"kas-dashboard-svc/internal/models"
)

// fakeKasAPI is an in-memory kas API
type fakeKasAPI struct {
	mu            sync.Mutex
	members       []models.Member
	invoices      []models.Invoice
	notifications []models.Notification
	stats         models.NotificationStats
	created       []models.InvoiceInput
	uploaded      []string

	loginErr  error
	logoutErr error
	listErr   error
	calls     atomic.Int32
	// block, when set, is waited on by ListMembers and ListNotifications
	block chan struct{}
}

func (f *fakeKasAPI) wait(ctx context.Context) error {
	f.calls.Add(1)
	if f.block == nil {
		return nil
	}
	select {
	case <-f.block:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeKasAPI) Login(ctx context.Context, username, password string) (*kasapi.LoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &kasapi.LoginResponse{Token: "tok-" + username, Role: "ADMIN", ExpiresIn: 3600}, nil
}

func (f *fakeKasAPI) Logout(ctx context.Context) (*kasapi.LogoutResponse, error) {
	if f.logoutErr != nil {
		return nil, f.logoutErr
	}
	return &kasapi.LogoutResponse{Message: "Logged out"}, nil
}

func (f *fakeKasAPI) ListMembers(ctx context.Context) ([]models.Member, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Member(nil), f.members...), nil
}

func (f *fakeKasAPI) GetMember(ctx context.Context, id string) (*models.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.members {
		if m.ID == id {
			m := m
			return &m, nil
		}
	}
	return nil, &kasapi.APIError{Op: "get member", StatusCode: http.StatusNotFound}
}

func (f *fakeKasAPI) CreateMember(ctx context.Context, in models.MemberInput) (*models.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m := models.Member{ID: "new", Nama: in.Nama, NoHp: in.NoHp, Status: in.Status}
	f.members = append(f.members, m)
	return &m, nil
}

func (f *fakeKasAPI) UpdateMember(ctx context.Context, id string, in models.MemberInput) (*models.Member, error) {
	return &models.Member{ID: id, Nama: in.Nama, NoHp: in.NoHp, Status: in.Status}, nil
}

func (f *fakeKasAPI) DeleteMember(ctx context.Context, id string) error {
	return nil
}

func (f *fakeKasAPI) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Invoice(nil), f.invoices...), nil
}

func (f *fakeKasAPI) GetInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, inv := range f.invoices {
		if inv.ID == id {
			inv := inv
			return &inv, nil
		}
	}
	return nil, &kasapi.APIError{Op: "get invoice", StatusCode: http.StatusNotFound}
}

func (f *fakeKasAPI) CreateInvoice(ctx context.Context, in models.InvoiceInput) (*models.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, in)
	return &models.Invoice{ID: "inv-new", MemberID: in.MemberID, MemberName: in.MemberName, Periode: in.Periode, Amount: in.Amount, Status: in.Status}, nil
}

func (f *fakeKasAPI) ApproveInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	return &models.Invoice{ID: id, Status: models.InvoicePaid}, nil
}

func (f *fakeKasAPI) UploadPaymentProof(ctx context.Context, id, filename string, content io.Reader) (*models.Invoice, error) {
	b, _ := io.ReadAll(content)
	f.mu.Lock()
	f.uploaded = append(f.uploaded, filename+":"+string(b))
	f.mu.Unlock()
	return &models.Invoice{ID: id, BuktiPembayaran: filename}, nil
}

// ListNotifications serves f.notifications paginated like the kas API
func (f *fakeKasAPI) ListNotifications(ctx context.Context, page, size int) (*models.PaginatedResponse[models.Notification], error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	total := len(f.notifications)
	start, end := page*size, (page+1)*size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	totalPages := (total + size - 1) / size
	return &models.PaginatedResponse[models.Notification]{
		Data: append([]models.Notification{}, f.notifications[start:end]...),
		PageMeta: models.PageMeta{
			Page:        page,
			Size:        size,
			TotalItems:  int64(total),
			TotalPages:  totalPages,
			HasNext:     page+1 < totalPages,
			HasPrevious: page > 0,
		},
	}, nil
}

func (f *fakeKasAPI) NotificationStats(ctx context.Context) (*models.NotificationStats, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	s := f.stats
	return &s, nil
}

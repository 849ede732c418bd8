package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kas-dashboard-svc/internal/kasapi"
	"kas-dashboard-svc/internal/models"
	"kas-dashboard-svc/pkg/logger"
)

func TestInvoiceServiceCreate(t *testing.T) {
	api := &fakeKasAPI{members: sampleMembers()}
	svc := NewInvoiceService(api, api, logger.NewNop())

	inv, err := svc.CreateInvoice(context.Background(), CreateInvoiceRequest{MemberID: "m1", Periode: "2025-03"})
	require.NoError(t, err)
	assert.Equal(t, models.Periode("032025"), inv.Periode)
	assert.EqualValues(t, models.DefaultInvoiceAmount, inv.Amount)
	assert.Equal(t, models.InvoiceUnpaid, inv.Status)

	require.Len(t, api.created, 1)
	assert.Equal(t, "Budi Santoso", api.created[0].MemberName)
}

func TestInvoiceServiceCreateValidation(t *testing.T) {
	api := &fakeKasAPI{members: sampleMembers()}
	svc := NewInvoiceService(api, api, logger.NewNop())
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateInvoiceRequest
	}{
		{"missing member", CreateInvoiceRequest{Periode: "2025-03"}},
		{"missing periode", CreateInvoiceRequest{MemberID: "m1"}},
		{"bad periode", CreateInvoiceRequest{MemberID: "m1", Periode: "2025-13"}},
		{"negative amount", CreateInvoiceRequest{MemberID: "m1", Periode: "2025-03", Amount: -1}},
		{"inactive member", CreateInvoiceRequest{MemberID: "m2", Periode: "2025-03"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateInvoice(ctx, tt.req)
			assert.True(t, IsValidationError(err), "got %v", err)
		})
	}
	assert.Empty(t, api.created)

	_, err := svc.CreateInvoice(ctx, CreateInvoiceRequest{MemberID: "ghost", Periode: "2025-03"})
	assert.Equal(t, 404, kasapi.StatusCode(err))
}

func TestInvoiceServiceListAndCounts(t *testing.T) {
	api := &fakeKasAPI{invoices: []models.Invoice{
		{ID: "i1", MemberName: "Budi", Periode: "012025", Status: models.InvoicePaid},
		{ID: "i2", MemberName: "Siti", Periode: "012025", Status: models.InvoiceUnpaid},
		{ID: "i3", MemberName: "Budi", Periode: "022025", Status: models.InvoiceUnpaid},
	}}
	svc := NewInvoiceService(api, api, logger.NewNop())

	list, err := svc.ListInvoices(context.Background(), "budi", 1, 10)
	require.NoError(t, err)
	assert.Len(t, list.Page.Items, 2)
	assert.Equal(t, 3, list.Counts.Total)
	assert.Equal(t, 1, list.Counts.Paid)
	assert.Equal(t, 2, list.Counts.Unpaid)
}

func TestInvoiceServiceUpload(t *testing.T) {
	api := &fakeKasAPI{}
	svc := NewInvoiceService(api, api, logger.NewNop())
	ctx := context.Background()

	_, err := svc.UploadPaymentProof(ctx, "i1", "proof.exe", strings.NewReader("x"))
	assert.True(t, IsValidationError(err))

	inv, err := svc.UploadPaymentProof(ctx, "i1", "dir/Proof.JPG", strings.NewReader("img"))
	require.NoError(t, err)
	assert.Equal(t, "Proof.JPG", inv.BuktiPembayaran)
	assert.Equal(t, []string{"Proof.JPG:img"}, api.uploaded)

	approved, err := svc.ApproveInvoice(ctx, "i1")
	require.NoError(t, err)
	assert.True(t, approved.IsPaid())
}

package kasapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"kas-dashboard-svc/internal/models"
)

// ListInvoices returns every invoice
func (c *Client) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	var out []models.Invoice
	if err := c.do(ctx, request{op: "list invoices", method: http.MethodGet, path: "/invoices", auth: true}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetInvoice returns one invoice
func (c *Client) GetInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	var out models.Invoice
	if err := c.do(ctx, request{op: "get invoice", method: http.MethodGet, path: "/invoices/" + url.PathEscape(id), auth: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateInvoice creates an invoice
func (c *Client) CreateInvoice(ctx context.Context, in models.InvoiceInput) (*models.Invoice, error) {
	body, err := jsonBody(in)
	if err != nil {
		return nil, err
	}
	var out models.Invoice
	if err := c.do(ctx, request{op: "create invoice", method: http.MethodPost, path: "/invoices", body: body, auth: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveInvoice marks an invoice as paid
func (c *Client) ApproveInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	var out models.Invoice
	if err := c.do(ctx, request{op: "approve invoice", method: http.MethodPost, path: "/invoices/" + url.PathEscape(id) + "/approve", auth: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadPaymentProof uploads the proof of payment as multipart field "file"
func (c *Client) UploadPaymentProof(ctx context.Context, id, filename string, content io.Reader) (*models.Invoice, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("upload payment proof: failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("upload payment proof: failed to copy file: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("upload payment proof: failed to close form: %w", err)
	}

	var out models.Invoice
	err = c.do(ctx, request{
		op:          "upload payment proof",
		method:      http.MethodPost,
		path:        "/invoices/" + url.PathEscape(id) + "/upload",
		body:        &buf,
		contentType: w.FormDataContentType(),
		auth:        true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"kas-dashboard-svc/internal/service"
	"kas-dashboard-svc/pkg/logger"
	"kas-dashboard-svc/pkg/utils"
)

// maxProofSize is the largest accepted payment proof upload
const maxProofSize = 5 << 20

// InvoiceHandler handles invoice HTTP requests
type InvoiceHandler struct {
	invoiceService service.InvoiceService
	logger         *logger.Logger
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService service.InvoiceService, logger *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		logger:         logger,
	}
}

// ListInvoices handles GET /api/v1/invoices
// @Summary List invoices
// @Description Search invoices by member name or periode with 1-indexed pagination. Counters cover all invoices.
// @Tags invoices
// @Produce json
// @Param q query string false "Search by member name or periode"
// @Param page query int false "Page number (default: 1)"
// @Param per_page query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} utils.APIResponse{data=service.InvoiceList}
// @Failure 502 {object} utils.APIResponse
// @Router /api/v1/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	page, perPage := utils.GetPaginationParams(c)

	list, err := h.invoiceService.ListInvoices(c.Request.Context(), c.Query("q"), page, perPage)
	if err != nil {
		respondError(c, h.logger, "Failed to retrieve invoices", err)
		return
	}

	utils.SuccessResponse(c, "Invoices retrieved successfully", list)
}

// GetInvoice handles GET /api/v1/invoices/:id
// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} utils.APIResponse{data=models.Invoice}
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid invoice ID", err)
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "Failed to retrieve invoice", err)
		return
	}

	utils.SuccessResponse(c, "Invoice retrieved successfully", invoice)
}

// CreateInvoice handles POST /api/v1/invoices
// @Summary Create invoice
// @Description Create an unpaid invoice for an active member. periode accepts YYYY-MM or MMYYYY; amount defaults to 50000.
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body service.CreateInvoiceRequest true "Invoice"
// @Success 201 {object} utils.APIResponse{data=models.Invoice}
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/v1/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req service.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, "Failed to create invoice", err)
		return
	}

	utils.CreatedResponse(c, "Invoice created successfully", invoice)
}

// ApproveInvoice handles POST /api/v1/invoices/:id/approve
// @Summary Approve invoice
// @Description Mark an invoice as paid
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} utils.APIResponse{data=models.Invoice}
// @Failure 404 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/v1/invoices/{id}/approve [post]
func (h *InvoiceHandler) ApproveInvoice(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid invoice ID", err)
		return
	}

	invoice, err := h.invoiceService.ApproveInvoice(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "Failed to approve invoice", err)
		return
	}

	utils.SuccessResponse(c, "Invoice approved successfully", invoice)
}

// UploadPaymentProof handles POST /api/v1/invoices/:id/upload
// @Summary Upload payment proof
// @Description Forward a proof of payment (jpg, jpeg, png or pdf, max 5MB) to the kas API
// @Tags invoices
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Invoice ID"
// @Param file formData file true "Payment proof"
// @Success 200 {object} utils.APIResponse{data=models.Invoice}
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/v1/invoices/{id}/upload [post]
func (h *InvoiceHandler) UploadPaymentProof(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid invoice ID", err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "File is required", err)
		return
	}
	if fileHeader.Size > maxProofSize {
		utils.BadRequestResponse(c, "File too large", fmt.Errorf("file size %d exceeds %d bytes", fileHeader.Size, maxProofSize))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequestResponse(c, "Failed to read file", err)
		return
	}
	defer file.Close()

	invoice, err := h.invoiceService.UploadPaymentProof(c.Request.Context(), id, fileHeader.Filename, file)
	if err != nil {
		respondError(c, h.logger, "Failed to upload payment proof", err)
		return
	}

	utils.SuccessResponse(c, "Payment proof uploaded successfully", invoice)
}

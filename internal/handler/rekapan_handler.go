package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kas-dashboard-svc/internal/export"
	"kas-dashboard-svc/internal/service"
	"kas-dashboard-svc/pkg/logger"
	"kas-dashboard-svc/pkg/utils"
)

// RekapanHandler handles payment recap HTTP requests
type RekapanHandler struct {
	rekapanService service.RekapanService
	logger         *logger.Logger
}

// NewRekapanHandler creates a new rekapan handler
func NewRekapanHandler(rekapanService service.RekapanService, logger *logger.Logger) *RekapanHandler {
	return &RekapanHandler{
		rekapanService: rekapanService,
		logger:         logger,
	}
}

// GetRekapan handles GET /api/v1/rekapan
// @Summary Get payment recap
// @Description Member by period payment matrix, 1-indexed pagination over members with a page-number strip (0 marks a gap)
// @Tags rekapan
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param per_page query int false "Members per page (default: 10, max: 100)"
// @Success 200 {object} utils.APIResponse{data=service.RekapanView}
// @Success 202 {object} utils.APIResponse{data=service.RekapanView} "Rebuild already in progress, last recap returned"
// @Failure 409 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/v1/rekapan [get]
func (h *RekapanHandler) GetRekapan(c *gin.Context) {
	page, perPage := utils.GetPaginationParams(c)

	view, err := h.rekapanService.GetRekapan(c.Request.Context(), page, perPage)
	respondState(c, h.logger, "Rekapan retrieved successfully", view, err)
}

// ExportRekapan handles GET /api/v1/rekapan/export
// @Summary Export payment recap
// @Description Download the recap as Rekapan_Uang_Kas_YYYY-MM-DD.csv or .xlsx
// @Tags rekapan
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv (default) or xlsx"
// @Success 200 {file} file
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/v1/rekapan/export [get]
func (h *RekapanHandler) ExportRekapan(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid format parameter", err)
		return
	}

	result, err := h.rekapanService.Export(c.Request.Context(), format)
	if err != nil {
		respondError(c, h.logger, "Failed to export rekapan", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.FileName+`"`)
	c.Header("X-Document-ID", result.DocumentID)
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

// ListExports handles GET /api/v1/rekapan/exports
// @Summary List export history
// @Description Export and snapshot runs, newest first
// @Tags rekapan
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} utils.PaginatedResponse{data=[]models.ExportLog}
// @Failure 500 {object} utils.APIResponse
// @Router /api/v1/rekapan/exports [get]
func (h *RekapanHandler) ListExports(c *gin.Context) {
	page, limit := utils.GetPaginationParams(c)

	logs, total, err := h.rekapanService.ListExports(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, h.logger, "Failed to retrieve export history", err)
		return
	}

	utils.PaginatedSuccessResponse(c, "Export history retrieved successfully", logs, page, limit, total)
}

// GetExportRun handles GET /api/v1/rekapan/exports/:documentId
// @Summary Get export run
// @Description Every history row of one export or snapshot run, oldest first
// @Tags rekapan
// @Produce json
// @Param documentId path string true "Document ID"
// @Success 200 {object} utils.APIResponse{data=[]models.ExportLog}
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/rekapan/exports/{documentId} [get]
func (h *RekapanHandler) GetExportRun(c *gin.Context) {
	run, err := h.rekapanService.GetExportRun(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		respondError(c, h.logger, "Export run not found", err)
		return
	}

	utils.SuccessResponse(c, "Export run retrieved successfully", run)
}

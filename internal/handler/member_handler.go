package handler

import (
	"github.com/gin-gonic/gin"

	"kas-dashboard-svc/internal/models"
	"kas-dashboard-svc/internal/service"
	"kas-dashboard-svc/pkg/logger"
	"kas-dashboard-svc/pkg/utils"
)

// MemberHandler handles member HTTP requests
type MemberHandler struct {
	memberService service.MemberService
	logger        *logger.Logger
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService service.MemberService, logger *logger.Logger) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		logger:        logger,
	}
}

// ListMembers handles GET /api/v1/members
// @Summary List members
// @Description Search members by name or phone with 1-indexed pagination. Counters cover all members.
// @Tags members
// @Produce json
// @Param q query string false "Search by name or phone"
// @Param page query int false "Page number (default: 1)"
// @Param per_page query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} utils.APIResponse{data=service.MemberList}
// @Failure 502 {object} utils.APIResponse
// @Router /api/v1/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	page, perPage := utils.GetPaginationParams(c)

	list, err := h.memberService.ListMembers(c.Request.Context(), c.Query("q"), page, perPage)
	if err != nil {
		respondError(c, h.logger, "Failed to retrieve members", err)
		return
	}

	utils.SuccessResponse(c, "Members retrieved successfully", list)
}

// ListActiveMembers handles GET /api/v1/members/active
// @Summary List active members
// @Description Members that can own a new invoice
// @Tags members
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]models.Member}
// @Failure 502 {object} utils.APIResponse
// @Router /api/v1/members/active [get]
func (h *MemberHandler) ListActiveMembers(c *gin.Context) {
	members, err := h.memberService.ActiveMembers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Failed to retrieve active members", err)
		return
	}

	utils.SuccessResponse(c, "Active members retrieved successfully", members)
}

// GetMember handles GET /api/v1/members/:id
// @Summary Get member
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} utils.APIResponse{data=models.Member}
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/members/{id} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid member ID", err)
		return
	}

	member, err := h.memberService.GetMember(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "Failed to retrieve member", err)
		return
	}

	utils.SuccessResponse(c, "Member retrieved successfully", member)
}

// CreateMember handles POST /api/v1/members
// @Summary Create member
// @Description nama and noHp are required; status defaults to active
// @Tags members
// @Accept json
// @Produce json
// @Param request body models.MemberInput true "Member"
// @Success 201 {object} utils.APIResponse{data=models.Member}
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/v1/members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req models.MemberInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	member, err := h.memberService.CreateMember(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, "Failed to create member", err)
		return
	}

	utils.CreatedResponse(c, "Member created successfully", member)
}

// UpdateMember handles PUT /api/v1/members/:id
// @Summary Update member
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param request body models.MemberInput true "Member"
// @Success 200 {object} utils.APIResponse{data=models.Member}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/members/{id} [put]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid member ID", err)
		return
	}

	var req models.MemberInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, h.logger, "Failed to update member", err)
		return
	}

	utils.SuccessResponse(c, "Member updated successfully", member)
}

// DeleteMember handles DELETE /api/v1/members/:id
// @Summary Delete member
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid member ID", err)
		return
	}

	if err := h.memberService.DeleteMember(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, "Failed to delete member", err)
		return
	}

	utils.SuccessResponse(c, "Member deleted successfully", nil)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"kas-dashboard-svc/internal/service"
	"kas-dashboard-svc/pkg/logger"
	"kas-dashboard-svc/pkg/utils"
)

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"secret"`
}

// AuthHandler handles session HTTP requests
type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Authenticate against the kas API and start the admin session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=session.Session}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	sess, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.logger, "Login failed", err)
		return
	}

	utils.SuccessResponse(c, "Login successful", sess)
}

// Logout handles POST /api/v1/auth/logout
// @Summary Log out
// @Description End the remote and the local session. The local session ends even when the remote call fails.
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	message, err := h.authService.Logout(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Logout failed", err)
		return
	}

	utils.SuccessResponse(c, message, nil)
}

// GetSession handles GET /api/v1/auth/session
// @Summary Get session
// @Description Show whether an admin session is active
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse{data=session.Session}
// @Failure 401 {object} utils.APIResponse
// @Router /api/v1/auth/session [get]
func (h *AuthHandler) GetSession(c *gin.Context) {
	sess, ok := h.authService.Current()
	if !ok {
		utils.UnauthorizedResponse(c, "No active session")
		return
	}
	utils.SuccessResponse(c, "Session is active", sess)
}

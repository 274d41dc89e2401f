package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/plantpass/pos-api/internal/application/service"
	"github.com/plantpass/pos-api/internal/domain/entity"
	"github.com/plantpass/pos-api/internal/presentation/http/dto/request"
	"github.com/plantpass/pos-api/internal/presentation/http/dto/response"
)

// AdminHandler handles authentication, feature toggles and resource locks.
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Login exchanges the shared admin password for a bearer token
func (h *AdminHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Password is required")
		return
	}

	result, err := h.adminService.Login(c.Request.Context(), req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Login successful", result)
}

// ChangePassword rotates the shared admin password
func (h *AdminHandler) ChangePassword(c *gin.Context) {
	var req request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Both the current and new password are required")
		return
	}

	if err := h.adminService.ChangePassword(c.Request.Context(), req.OldPassword, req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Password changed", nil)
}

// GetFeatureToggles returns the cached feature toggles
func (h *AdminHandler) GetFeatureToggles(c *gin.Context) {
	toggles, err := h.adminService.FeatureToggles(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Feature toggles retrieved", toggles)
}

// RefreshFeatureToggles re-reads the toggles from the backend
func (h *AdminHandler) RefreshFeatureToggles(c *gin.Context) {
	toggles, err := h.adminService.Refresh(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Feature toggles refreshed", toggles)
}

// UpdateFeatureToggles writes the toggles through to the backend
func (h *AdminHandler) UpdateFeatureToggles(c *gin.Context) {
	var toggles entity.FeatureToggles
	if err := c.ShouldBindJSON(&toggles); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.adminService.SetFeatureToggles(c.Request.Context(), &toggles); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Feature toggles updated", toggles)
}

// GetLockState returns the lock flag for a named resource
func (h *AdminHandler) GetLockState(c *gin.Context) {
	locked, err := h.adminService.LockState(c.Request.Context(), c.Param("resource"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Lock state retrieved", gin.H{"isLocked": locked})
}

// SetLockState sets the lock flag for a named resource
func (h *AdminHandler) SetLockState(c *gin.Context) {
	var req request.LockStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "isLocked is required")
		return
	}

	if err := h.adminService.SetLockState(c.Request.Context(), c.Param("resource"), *req.IsLocked); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Lock state updated", gin.H{"isLocked": *req.IsLocked})
}

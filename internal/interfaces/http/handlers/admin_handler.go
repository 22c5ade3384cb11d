package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerrors "cybershield.backend/internal/domain/errors"
	"cybershield.backend/internal/interfaces/http/response"
	"cybershield.backend/internal/usecases"
)

// AdminHandler handles admin endpoints
type AdminHandler struct {
	adminUsecase *usecases.AdminUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase *usecases.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// ListUsers lists every user
// GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminUsecase.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// ListReports lists every scan report
// GET /admin/reports
func (h *AdminHandler) ListReports(c *gin.Context) {
	reports, err := h.adminUsecase.ListReports(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reports": reports})
}

// ListReportsByUser lists one user's scan reports. A user without reports
// yields an empty list, not a 404.
// GET /admin/reports/user/:id
func (h *AdminHandler) ListReportsByUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	reports, err := h.adminUsecase.ListReportsByUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reports": reports})
}

// DeleteUser deletes a user and all owned reports
// DELETE /admin/user/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	if err := h.adminUsecase.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound(domainerrors.CodeUserNotFound, "User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func userIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest(domainerrors.CodeValidation, "Invalid user ID"))
		return 0, false
	}
	return uint(id), true
}

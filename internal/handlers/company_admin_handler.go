package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobnest_backend/internal/models"
	"jobnest_backend/internal/services"
	"jobnest_backend/internal/services/dto"
)

// CompanyAdminHandler serves the company-admin flows: atomic registration,
// role-checked login, staff roster and the dashboard.
type CompanyAdminHandler struct {
	*BaseHandler
	companyService services.CompanyService
	authService    services.AuthService
}

func NewCompanyAdminHandler(base *BaseHandler, companyService services.CompanyService, authService services.AuthService) *CompanyAdminHandler {
	return &CompanyAdminHandler{BaseHandler: base, companyService: companyService, authService: authService}
}

func (h *CompanyAdminHandler) Register(c *gin.Context) {
	var req dto.RegisterCompanyAdminRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.companyService.RegisterCompanyAdmin(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CompanyAdminHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.LoginWithRoles(c.Request.Context(), req,
		models.UserRoleCompanyAdmin)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CompanyAdminHandler) AddStaff(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}

	var req dto.AddStaffRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	member, err := h.companyService.AddStaff(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *CompanyAdminHandler) ListStaff(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}

	staff, err := h.companyService.ListStaff(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

func (h *CompanyAdminHandler) RemoveStaff(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}
	targetID, ok := h.ParamUint(c, "userId")
	if !ok {
		return
	}

	if err := h.companyService.RemoveStaff(c.Request.Context(), userID, targetID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member removed"})
}

func (h *CompanyAdminHandler) Dashboard(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}

	summary, err := h.companyService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobnest_backend/internal/models"
	"jobnest_backend/internal/services"
	"jobnest_backend/internal/services/dto"
)

// UserHandler serves registration, the login variants and the current-user
// endpoint.
type UserHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewUserHandler(base *BaseHandler, authService services.AuthService) *UserHandler {
	return &UserHandler{BaseHandler: base, authService: authService}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LoginCompany only admits company-side accounts; everyone else gets a
// descriptive 403 instead of a generic credentials error.
func (h *UserHandler) LoginCompany(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.LoginWithRoles(c.Request.Context(), req,
		models.UserRoleCompany, models.UserRoleCompanyAdmin, models.UserRoleCompanyStaff)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetMe(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobnest_backend/internal/services"
	"jobnest_backend/internal/services/dto"
)

type CompanyHandler struct {
	*BaseHandler
	companyService services.CompanyService
}

func NewCompanyHandler(base *BaseHandler, companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{BaseHandler: base, companyService: companyService}
}

// logoFile extracts the optional logo from a multipart body. JSON bodies have
// no file part and that is fine.
func logoFile(c *gin.Context) *multipart.FileHeader {
	file, err := c.FormFile("logo")
	if err != nil {
		return nil
	}
	return file
}

func (h *CompanyHandler) Create(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCompanyRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), userID, req, logoFile(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

func (h *CompanyHandler) List(c *gin.Context) {
	page, pageSize := h.Pagination(c)

	companies, pagination, err := h.companyService.ListCompanies(c.Request.Context(), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies, "pagination": pagination})
}

func (h *CompanyHandler) Get(c *gin.Context) {
	companyID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	company, err := h.companyService.GetCompany(c.Request.Context(), companyID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) GetMine(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}

	company, err := h.companyService.GetMyCompany(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	company, warning, err := h.companyService.UpdateCompany(c.Request.Context(), userID, req, logoFile(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if warning != "" {
		c.JSON(http.StatusOK, gin.H{"company": company, "warning": warning})
		return
	}
	c.JSON(http.StatusOK, company)
}

// Delete removes the company together with its jobs, applications and
// favorites.
func (h *CompanyHandler) Delete(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}

	if err := h.companyService.DeleteCompany(c.Request.Context(), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Company deleted"})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobnest_backend/internal/models"
	"jobnest_backend/internal/services"
	"jobnest_backend/internal/services/dto"
	"jobnest_backend/pkg/apperrors"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

// Submit takes a multipart form with a job_id field and a cv file.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}

	jobIDRaw := c.PostForm("job_id")
	jobID, err := strconv.ParseUint(jobIDRaw, 10, 32)
	if err != nil || jobID == 0 {
		apperrors.HandleError(c, apperrors.NewBadRequestError("A valid job_id form field is required"))
		return
	}

	cv, err := c.FormFile("cv")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("A cv file is required"))
		return
	}

	application, err := h.applicationService.Submit(c.Request.Context(), userID, uint(jobID), cv)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListMine(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}
	applicationID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.UpdateStatus(c.Request.Context(), userID,
		applicationID, models.ApplicationStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

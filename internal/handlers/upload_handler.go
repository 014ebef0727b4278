package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobnest_backend/internal/services"
	"jobnest_backend/pkg/apperrors"
)

// UploadHandler serves the generic authenticated file upload endpoint used for
// profile pictures and other standalone files.
type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{BaseHandler: base, uploadService: uploadService}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	h.uploadTo(c, c.DefaultPostForm("folder", "files"))
}

func (h *UploadHandler) UploadProfilePicture(c *gin.Context) {
	h.uploadTo(c, "profiles")
}

func (h *UploadHandler) UploadCV(c *gin.Context) {
	h.uploadTo(c, "cvs")
}

func (h *UploadHandler) uploadTo(c *gin.Context, folder string) {
	if _, ok := h.AuthUserID(c); !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("A file form field is required"))
		return
	}

	url, err := h.uploadService.UploadFile(c.Request.Context(), file, folder)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

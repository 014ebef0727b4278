package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobnest_backend/internal/validator"
	"jobnest_backend/pkg/apperrors"
)

// BaseHandler carries the shared plumbing every HTTP handler needs.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidateJSON binds the JSON body into req and runs struct validation.
// On failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return h.validateStruct(c, req)
}

// BindAndValidateForm binds multipart/urlencoded form fields into req.
func (h *BaseHandler) BindAndValidateForm(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid form data: "+err.Error()))
		return false
	}
	return h.validateStruct(c, req)
}

// BindQuery binds query string parameters into req.
func (h *BaseHandler) BindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}
	return true
}

func (h *BaseHandler) validateStruct(c *gin.Context, req interface{}) bool {
	if err := h.validator.Validate(req); err != nil {
		var valErr *validator.ValidationError
		if errors.As(err, &valErr) {
			apperrors.HandleError(c, apperrors.ValidationError(valErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError writes any error coming back from the service layer.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// AuthUserID returns the user id placed in the context by the auth middleware.
func (h *BaseHandler) AuthUserID(c *gin.Context) (uint, bool) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return 0, false
	}
	userID, ok := userIDVal.(uint)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return 0, false
	}
	return userID, true
}

// ParamUint parses a positive integer path parameter.
func (h *BaseHandler) ParamUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || val == 0 {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid "+name+" parameter"))
		return 0, false
	}
	return uint(val), true
}

// Pagination extracts page/limit query params with sane bounds.
func (h *BaseHandler) Pagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}

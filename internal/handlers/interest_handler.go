package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobnest_backend/internal/services"
	"jobnest_backend/internal/services/dto"
)

type InterestHandler struct {
	*BaseHandler
	skillService services.SkillService
}

func NewInterestHandler(base *BaseHandler, skillService services.SkillService) *InterestHandler {
	return &InterestHandler{BaseHandler: base, skillService: skillService}
}

func (h *InterestHandler) Add(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInterestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	interest, err := h.skillService.AddInterest(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, interest)
}

func (h *InterestHandler) List(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}

	interests, err := h.skillService.ListInterests(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"interests": interests})
}

func (h *InterestHandler) Remove(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}
	interestID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	if err := h.skillService.RemoveInterest(c.Request.Context(), userID, interestID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Interest removed"})
}

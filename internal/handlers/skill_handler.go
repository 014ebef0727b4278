package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobnest_backend/internal/services"
	"jobnest_backend/internal/services/dto"
)

type SkillHandler struct {
	*BaseHandler
	skillService services.SkillService
}

func NewSkillHandler(base *BaseHandler, skillService services.SkillService) *SkillHandler {
	return &SkillHandler{BaseHandler: base, skillService: skillService}
}

func (h *SkillHandler) Add(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSkillRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	skill, err := h.skillService.AddSkill(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, skill)
}

func (h *SkillHandler) List(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}

	skills, err := h.skillService.ListSkills(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

func (h *SkillHandler) Update(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}
	skillID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSkillRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	skill, err := h.skillService.UpdateSkill(c.Request.Context(), userID, skillID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, skill)
}

func (h *SkillHandler) Remove(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}
	skillID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	if err := h.skillService.RemoveSkill(c.Request.Context(), userID, skillID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skill removed"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobnest_backend/internal/services"
)

type FavoriteHandler struct {
	*BaseHandler
	favoriteService services.FavoriteService
}

func NewFavoriteHandler(base *BaseHandler, favoriteService services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{BaseHandler: base, favoriteService: favoriteService}
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}
	jobID, ok := h.ParamUint(c, "jobId")
	if !ok {
		return
	}

	favorite, err := h.favoriteService.Add(c.Request.Context(), userID, jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, favorite)
}

func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}

	favorites, err := h.favoriteService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

func (h *FavoriteHandler) Check(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}
	jobID, ok := h.ParamUint(c, "jobId")
	if !ok {
		return
	}

	isFavorite, err := h.favoriteService.IsFavorite(c.Request.Context(), userID, jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_favorite": isFavorite})
}

// RemoveByJob deletes by the natural (user, job) key.
func (h *FavoriteHandler) RemoveByJob(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}
	jobID, ok := h.ParamUint(c, "jobId")
	if !ok {
		return
	}

	if err := h.favoriteService.Remove(c.Request.Context(), userID, jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}

// Remove deletes by the favorite row id.
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}
	favoriteID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	if err := h.favoriteService.RemoveByID(c.Request.Context(), userID, favoriteID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}

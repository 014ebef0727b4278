package dto

import "jobnest_backend/internal/models"

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,is-application-status"`
}

// Pagination is the envelope shape the frontend paginates against.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

type ApplicationListResponse struct {
	Applications []models.Application `json:"applications"`
	Pagination   Pagination           `json:"pagination"`
}

func NewPagination(page, pageSize int, totalCount int64) Pagination {
	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobnest_backend/internal/models"
	"jobnest_backend/internal/repositories"
	"jobnest_backend/internal/services"
	"jobnest_backend/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService         services.JobService
	applicationService services.ApplicationService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, applicationService services.ApplicationService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService, applicationService: applicationService}
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// List is public: anyone can browse jobs with optional filters.
func (h *JobHandler) List(c *gin.Context) {
	var filter repositories.JobFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	jobs, err := h.jobService.ListJobs(c.Request.Context(), filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) Get(c *gin.Context) {
	jobID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	job, err := h.jobService.GetJob(c.Request.Context(), jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) ListMine(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListMyJobs(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// ListByCompany is public: lists a company's postings for its public page.
func (h *JobHandler) ListByCompany(c *gin.Context) {
	companyID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	jobs, err := h.jobService.ListCompanyJobs(c.Request.Context(), companyID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) Update(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}
	jobID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), userID, jobID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}
	jobID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.jobService.UpdateJobStatus(c.Request.Context(), userID, jobID,
		models.JobStatus(req.Status)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job status updated"})
}

func (h *JobHandler) Delete(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}
	jobID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(c.Request.Context(), userID, jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

// ListApplications returns the paginated applications for one of the caller's
// jobs.
func (h *JobHandler) ListApplications(c *gin.Context) {
	userID, ok := h.AuthUserID(c)
	if !ok {
		return
	}
	jobID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}
	page, pageSize := h.Pagination(c)

	resp, err := h.applicationService.ListForJob(c.Request.Context(), userID, jobID, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

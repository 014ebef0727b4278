package services

import (
	"context"
	"errors"

	"jobnest_backend/internal/logger"
	"jobnest_backend/internal/models"
	"jobnest_backend/internal/repositories"
	"jobnest_backend/internal/services/dto"
	"jobnest_backend/pkg/apperrors"
)

type JobService interface {
	CreateJob(ctx context.Context, userID uint, req dto.CreateJobRequest) (*models.Job, error)
	GetJob(ctx context.Context, jobID uint) (*models.Job, error)
	ListJobs(ctx context.Context, filter repositories.JobFilter) ([]models.Job, error)
	ListMyJobs(ctx context.Context, userID uint) ([]models.Job, error)
	ListCompanyJobs(ctx context.Context, companyID uint) ([]models.Job, error)
	UpdateJob(ctx context.Context, userID, jobID uint, req dto.UpdateJobRequest) (*models.Job, error)
	UpdateJobStatus(ctx context.Context, userID, jobID uint, status models.JobStatus) error
	DeleteJob(ctx context.Context, userID, jobID uint) error
}

type jobService struct {
	jobRepo     repositories.JobRepository
	companyRepo repositories.CompanyRepository
}

func NewJobService(jobRepo repositories.JobRepository, companyRepo repositories.CompanyRepository) JobService {
	return &jobService{jobRepo: jobRepo, companyRepo: companyRepo}
}

// resolveCompany re-derives the caller's company on every request instead of
// trusting a company id from the token or the body.
func resolveCompany(companyRepo repositories.CompanyRepository, userID uint) (*models.Company, error) {
	company, err := companyRepo.FindByUserID(userID)
	if err == nil {
		return company, nil
	}
	if !errors.Is(err, repositories.ErrCompanyNotFound) {
		return nil, apperrors.InternalError(err)
	}

	company, err = companyRepo.FindByStaffUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err, "companies", "You do not have a company yet")
		}
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

func (s *jobService) CreateJob(ctx context.Context, userID uint, req dto.CreateJobRequest) (*models.Job, error) {
	company, err := resolveCompany(s.companyRepo, userID)
	if err != nil {
		return nil, err
	}

	status := models.JobStatus(req.Status)
	if status == "" {
		status = models.JobStatusActive
	}

	job := &models.Job{
		CompanyID:    company.ID,
		Title:        req.Title,
		Description:  req.Description,
		JobType:      req.JobType,
		WorkMode:     req.WorkMode,
		Location:     req.Location,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		Requirements: req.Requirements,
		Benefits:     req.Benefits,
		Status:       status,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "job created", "job_id", job.ID, "company_id", company.ID)
	return job, nil
}

func (s *jobService) GetJob(ctx context.Context, jobID uint) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "jobs", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *jobService) ListJobs(ctx context.Context, filter repositories.JobFilter) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindAll(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *jobService) ListMyJobs(ctx context.Context, userID uint) ([]models.Job, error) {
	company, err := resolveCompany(s.companyRepo, userID)
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobRepo.FindByCompany(company.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *jobService) ListCompanyJobs(ctx context.Context, companyID uint) ([]models.Job, error) {
	if _, err := s.companyRepo.FindByID(companyID); err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err, "companies", "Company not found")
		}
		return nil, apperrors.InternalError(err)
	}
	jobs, err := s.jobRepo.FindByCompany(companyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// ownedJob loads the job and verifies it belongs to the caller's company.
func (s *jobService) ownedJob(userID, jobID uint) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "jobs", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	company, err := resolveCompany(s.companyRepo, userID)
	if err != nil {
		return nil, err
	}
	if job.CompanyID != company.ID {
		return nil, apperrors.ErrNotOwner
	}
	return job, nil
}

func (s *jobService) UpdateJob(ctx context.Context, userID, jobID uint, req dto.UpdateJobRequest) (*models.Job, error) {
	if _, err := s.ownedJob(userID, jobID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.JobType != nil {
		fields["job_type"] = *req.JobType
	}
	if req.WorkMode != nil {
		fields["work_mode"] = *req.WorkMode
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.SalaryMin != nil {
		fields["salary_min"] = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		fields["salary_max"] = *req.SalaryMax
	}
	if req.Requirements != nil {
		fields["requirements"] = *req.Requirements
	}
	if req.Benefits != nil {
		fields["benefits"] = *req.Benefits
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	if err := s.jobRepo.UpdateFields(jobID, fields); err != nil {
		return nil, apperrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "job updated", "job_id", jobID)
	return job, nil
}

func (s *jobService) UpdateJobStatus(ctx context.Context, userID, jobID uint, status models.JobStatus) error {
	if !models.IsValidJobStatus(status) {
		return apperrors.ErrInvalidStatus("jobs", "Invalid job status: "+string(status))
	}
	if _, err := s.ownedJob(userID, jobID); err != nil {
		return err
	}
	if err := s.jobRepo.UpdateFields(jobID, map[string]interface{}{"status": status}); err != nil {
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "job status updated", "job_id", jobID, "status", status)
	return nil
}

func (s *jobService) DeleteJob(ctx context.Context, userID, jobID uint) error {
	if _, err := s.ownedJob(userID, jobID); err != nil {
		return err
	}
	if err := s.jobRepo.Delete(jobID); err != nil {
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "job deleted", "job_id", jobID)
	return nil
}

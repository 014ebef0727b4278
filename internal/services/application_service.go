package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"jobnest_backend/internal/email"
	"jobnest_backend/internal/logger"
	"jobnest_backend/internal/models"
	"jobnest_backend/internal/repositories"
	"jobnest_backend/internal/services/dto"
	"jobnest_backend/pkg/apperrors"
)

type ApplicationService interface {
	Submit(ctx context.Context, userID, jobID uint, cv *multipart.FileHeader) (*models.Application, error)
	ListForJob(ctx context.Context, actorID, jobID uint, page, pageSize int) (*dto.ApplicationListResponse, error)
	ListMine(ctx context.Context, userID uint) ([]models.Application, error)
	UpdateStatus(ctx context.Context, actorID, applicationID uint, status models.ApplicationStatus) (*models.Application, error)
}

type applicationService struct {
	appRepo       repositories.ApplicationRepository
	jobRepo       repositories.JobRepository
	companyRepo   repositories.CompanyRepository
	userRepo      repositories.UserRepository
	uploads       UploadService
	notifications NotificationService
	emailSender   email.Sender
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	companyRepo repositories.CompanyRepository,
	userRepo repositories.UserRepository,
	uploads UploadService,
	notifications NotificationService,
	sender email.Sender,
) ApplicationService {
	return &applicationService{
		appRepo:       appRepo,
		jobRepo:       jobRepo,
		companyRepo:   companyRepo,
		userRepo:      userRepo,
		uploads:       uploads,
		notifications: notifications,
		emailSender:   sender,
	}
}

// Submit uploads the CV first and only then inserts the application row. The
// two steps are deliberately not atomic: a failed insert leaves an orphan file
// in storage, which is acceptable, while the reverse (a row pointing at a
// missing CV) is not.
func (s *applicationService) Submit(ctx context.Context, userID, jobID uint, cv *multipart.FileHeader) (*models.Application, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "applications", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	exists, err := s.appRepo.ExistsForUserAndJob(userID, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyExists(nil, "applications", "You have already applied to this job")
	}

	var cvURL string
	if cv != nil {
		cvURL, err = s.uploads.UploadFile(ctx, cv, "cvs")
		if err != nil {
			return nil, err
		}
	}

	application := &models.Application{
		UserID: userID,
		JobID:  jobID,
		CVURL:  cvURL,
		Status: models.ApplicationStatusPending,
	}
	if err := s.appRepo.Create(application); err != nil {
		if errors.Is(err, repositories.ErrApplicationExists) {
			return nil, apperrors.ErrAlreadyExists(err, "applications", "You have already applied to this job")
		}
		return nil, apperrors.InternalError(err)
	}

	// Tell the company owner someone applied.
	if job.Company != nil {
		if _, err := s.notifications.Notify(ctx, job.Company.UserID, "new_application",
			fmt.Sprintf("New application received for %s.", job.Title),
			map[string]interface{}{"application_id": application.ID, "job_id": job.ID}); err != nil {
			logger.CtxWarn(ctx, "failed to notify company about new application",
				"job_id", job.ID, "error", err.Error())
		}
	}

	logger.CtxInfo(ctx, "application submitted", "application_id", application.ID, "job_id", jobID)
	return application, nil
}

func (s *applicationService) ListForJob(ctx context.Context, actorID, jobID uint, page, pageSize int) (*dto.ApplicationListResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "applications", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	company, err := resolveCompany(s.companyRepo, actorID)
	if err != nil {
		return nil, err
	}
	if job.CompanyID != company.ID {
		return nil, apperrors.ErrNotOwner
	}

	applications, total, err := s.appRepo.FindByJob(jobID, page, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ApplicationListResponse{
		Applications: applications,
		Pagination:   dto.NewPagination(page, pageSize, total),
	}, nil
}

func (s *applicationService) ListMine(ctx context.Context, userID uint) ([]models.Application, error) {
	applications, err := s.appRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, actorID, applicationID uint, status models.ApplicationStatus) (*models.Application, error) {
	if !models.IsValidApplicationStatus(status) {
		return nil, apperrors.ErrInvalidStatus("applications", "Invalid application status: "+string(status))
	}

	application, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "applications", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	company, err := resolveCompany(s.companyRepo, actorID)
	if err != nil {
		return nil, err
	}
	if application.Job == nil || application.Job.CompanyID != company.ID {
		return nil, apperrors.ErrNotOwner
	}

	if err := s.appRepo.UpdateStatus(applicationID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	application.Status = status

	message := statusMessage(status, application.Job.Title)
	if _, err := s.notifications.Notify(ctx, application.UserID, "application_status", message,
		map[string]interface{}{"application_id": application.ID, "job_id": application.JobID, "status": string(status)}); err != nil {
		logger.CtxWarn(ctx, "failed to notify applicant about status change",
			"application_id", application.ID, "error", err.Error())
	}

	// Status mail is best-effort like every other email.
	go s.sendStatusEmail(application.UserID, message, application.Job.Title)

	logger.CtxInfo(ctx, "application status updated",
		"application_id", applicationID, "status", status)
	return application, nil
}

func (s *applicationService) sendStatusEmail(userID uint, message, jobTitle string) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		logger.Warn("status email skipped, user lookup failed", "user_id", userID, "error", err.Error())
		return
	}
	if err := s.emailSender.SendTemplate(user.Email, "Your application status changed",
		email.TemplateApplicationStatus,
		email.TemplateData{"Message": message, "JobTitle": jobTitle}); err != nil {
		logger.Warn("status email failed", "user_id", userID, "error", err.Error())
	}
}

// statusMessage builds the applicant-facing text for a status change.
func statusMessage(status models.ApplicationStatus, jobTitle string) string {
	switch status {
	case models.ApplicationStatusAccepted:
		return "Congratulations! Your application has been accepted."
	case models.ApplicationStatusRejected:
		return "We regret to inform you that your application has been rejected."
	case models.ApplicationStatusShortlisted:
		return fmt.Sprintf("You have been shortlisted for %s.", jobTitle)
	case models.ApplicationStatusInterview:
		return fmt.Sprintf("You have been invited to an interview for %s.", jobTitle)
	default:
		return fmt.Sprintf("Your application for %s is now %s.", jobTitle, status)
	}
}

package services

import (
	"context"
	"errors"
	"mime/multipart"

	"gorm.io/gorm"

	"jobnest_backend/internal/auth"
	"jobnest_backend/internal/logger"
	"jobnest_backend/internal/models"
	"jobnest_backend/internal/repositories"
	"jobnest_backend/internal/services/dto"
	"jobnest_backend/pkg/apperrors"
)

type CompanyService interface {
	CreateCompany(ctx context.Context, userID uint, req dto.CreateCompanyRequest, logo *multipart.FileHeader) (*models.Company, error)
	GetCompany(ctx context.Context, companyID uint) (*models.Company, error)
	GetMyCompany(ctx context.Context, userID uint) (*models.Company, error)
	ListCompanies(ctx context.Context, page, pageSize int) ([]models.Company, dto.Pagination, error)
	UpdateCompany(ctx context.Context, userID uint, req dto.UpdateCompanyRequest, logo *multipart.FileHeader) (*models.Company, string, error)
	DeleteCompany(ctx context.Context, userID uint) error

	RegisterCompanyAdmin(ctx context.Context, req dto.RegisterCompanyAdminRequest) (*dto.AuthResponse, error)
	AddStaff(ctx context.Context, actorID uint, req dto.AddStaffRequest) (*dto.StaffMemberDTO, error)
	ListStaff(ctx context.Context, actorID uint) ([]dto.StaffMemberDTO, error)
	RemoveStaff(ctx context.Context, actorID, targetUserID uint) error

	Dashboard(ctx context.Context, actorID uint) (*dto.DashboardSummary, error)
}

type companyService struct {
	db               *gorm.DB
	companyRepo      repositories.CompanyRepository
	userRepo         repositories.UserRepository
	jobRepo          repositories.JobRepository
	notificationRepo repositories.NotificationRepository
	uploads          UploadService
}

func NewCompanyService(db *gorm.DB, companyRepo repositories.CompanyRepository, userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository, notificationRepo repositories.NotificationRepository, uploads UploadService) CompanyService {
	return &companyService{
		db:               db,
		companyRepo:      companyRepo,
		userRepo:         userRepo,
		jobRepo:          jobRepo,
		notificationRepo: notificationRepo,
		uploads:          uploads,
	}
}

func (s *companyService) CreateCompany(ctx context.Context, userID uint, req dto.CreateCompanyRequest, logo *multipart.FileHeader) (*models.Company, error) {
	company := &models.Company{
		UserID:      userID,
		Name:        req.Name,
		Industry:    req.Industry,
		Size:        req.Size,
		Location:    req.Location,
		Founded:     req.Founded,
		Website:     req.Website,
		Description: req.Description,
		Vision:      req.Vision,
		Mission:     req.Mission,
	}

	if logo != nil {
		url, err := s.uploads.UploadFile(ctx, logo, "logos")
		if err != nil {
			return nil, err
		}
		company.LogoURL = url
	}

	if err := s.companyRepo.Create(company); err != nil {
		if errors.Is(err, repositories.ErrCompanyAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err, "companies", "You already have a company profile")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "company created", "company_id", company.ID)
	return company, nil
}

func (s *companyService) GetCompany(ctx context.Context, companyID uint) (*models.Company, error) {
	company, err := s.companyRepo.FindByID(companyID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err, "companies", "Company not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

func (s *companyService) GetMyCompany(ctx context.Context, userID uint) (*models.Company, error) {
	return resolveCompany(s.companyRepo, userID)
}

func (s *companyService) ListCompanies(ctx context.Context, page, pageSize int) ([]models.Company, dto.Pagination, error) {
	companies, total, err := s.companyRepo.FindAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}
	return companies, dto.NewPagination(page, pageSize, total), nil
}

// UpdateCompany applies the sparse update. A failed logo re-upload does not
// fail the request: the other fields still commit and the returned warning
// surfaces to the client.
func (s *companyService) UpdateCompany(ctx context.Context, userID uint, req dto.UpdateCompanyRequest, logo *multipart.FileHeader) (*models.Company, string, error) {
	company, err := resolveCompany(s.companyRepo, userID)
	if err != nil {
		return nil, "", err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Industry != nil {
		fields["industry"] = *req.Industry
	}
	if req.Size != nil {
		fields["size"] = *req.Size
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Founded != nil {
		fields["founded"] = *req.Founded
	}
	if req.Website != nil {
		fields["website"] = *req.Website
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Vision != nil {
		fields["vision"] = *req.Vision
	}
	if req.Mission != nil {
		fields["mission"] = *req.Mission
	}

	var warning string
	if logo != nil {
		url, err := s.uploads.UploadFile(ctx, logo, "logos")
		if err != nil {
			logger.CtxWarn(ctx, "logo upload failed, updating company without logo", "error", err.Error())
			warning = "Logo upload failed; the company was updated without it"
		} else {
			fields["logo_url"] = url
		}
	}

	if err := s.companyRepo.UpdateFields(company.ID, fields); err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	updated, err := s.companyRepo.FindByID(company.ID)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "company updated", "company_id", company.ID)
	return updated, warning, nil
}

func (s *companyService) DeleteCompany(ctx context.Context, userID uint) error {
	company, err := s.companyRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return apperrors.ErrNotFound(err, "companies", "You do not have a company yet")
		}
		return apperrors.InternalError(err)
	}

	if err := s.companyRepo.DeleteCascade(company.ID); err != nil {
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "company deleted with all jobs and applications", "company_id", company.ID)
	return nil
}

// RegisterCompanyAdmin creates the admin user, the company and the staff link
// atomically. A failure at any step leaves no partial account behind.
func (s *companyService) RegisterCompanyAdmin(ctx context.Context, req dto.RegisterCompanyAdminRequest) (*dto.AuthResponse, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.UserRoleCompanyAdmin,
	}
	company := &models.Company{
		Name:     req.CompanyName,
		Industry: req.Industry,
		Location: req.Location,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.Where("email = ?", user.Email).First(&existing).Error; err == nil {
			return repositories.ErrUserAlreadyExists
		}
		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return repositories.ErrUserAlreadyExists
			}
			return err
		}

		company.UserID = user.ID
		if err := tx.Create(company).Error; err != nil {
			return err
		}

		link := &models.CompanyAdmin{
			CompanyID:     company.ID,
			UserID:        user.ID,
			RoleInCompany: "owner",
		}
		return tx.Create(link).Error
	})
	if err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err, "users", "A user with this email already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	companyID := company.ID
	token, err := auth.GenerateToken(user.ID, user.Email, string(user.Role), &companyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "company admin registered", "user_id", user.ID, "company_id", company.ID)
	userDTO := dto.ToUserDTO(user)
	userDTO.CompanyID = &companyID
	return &dto.AuthResponse{Token: token, User: userDTO}, nil
}

// adminCompany resolves the actor's company and verifies the actor may manage
// its staff: either the owning user or a staff member with an owner/admin role.
func (s *companyService) adminCompany(actorID uint) (*models.Company, error) {
	company, err := s.companyRepo.FindByUserID(actorID)
	if err == nil {
		return company, nil
	}
	if !errors.Is(err, repositories.ErrCompanyNotFound) {
		return nil, apperrors.InternalError(err)
	}

	company, err = s.companyRepo.FindByStaffUserID(actorID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err, "companies", "You do not have a company yet")
		}
		return nil, apperrors.InternalError(err)
	}

	link, err := s.companyRepo.FindStaffLink(company.ID, actorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if link.RoleInCompany != "owner" && link.RoleInCompany != "admin" {
		return nil, apperrors.NewForbiddenError("Only company admins can manage staff")
	}
	return company, nil
}

func (s *companyService) AddStaff(ctx context.Context, actorID uint, req dto.AddStaffRequest) (*dto.StaffMemberDTO, error) {
	company, err := s.adminCompany(actorID)
	if err != nil {
		return nil, err
	}

	target, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "users", "No user with this email")
		}
		return nil, apperrors.InternalError(err)
	}

	roleInCompany := req.RoleInCompany
	if roleInCompany == "" {
		roleInCompany = "staff"
	}

	link := &models.CompanyAdmin{
		CompanyID:     company.ID,
		UserID:        target.ID,
		RoleInCompany: roleInCompany,
	}
	if err := s.companyRepo.CreateStaffLink(link); err != nil {
		if errors.Is(err, repositories.ErrStaffLinkExists) {
			return nil, apperrors.ErrAlreadyExists(err, "companies", "User is already on the staff roster")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "staff member added", "company_id", company.ID, "staff_user_id", target.ID)
	return &dto.StaffMemberDTO{
		UserID:        target.ID,
		Email:         target.Email,
		RoleInCompany: roleInCompany,
	}, nil
}

func (s *companyService) ListStaff(ctx context.Context, actorID uint) ([]dto.StaffMemberDTO, error) {
	company, err := resolveCompany(s.companyRepo, actorID)
	if err != nil {
		return nil, err
	}

	links, err := s.companyRepo.FindStaff(company.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	staff := make([]dto.StaffMemberDTO, 0, len(links))
	for _, link := range links {
		member := dto.StaffMemberDTO{
			UserID:        link.UserID,
			RoleInCompany: link.RoleInCompany,
		}
		if link.User != nil {
			member.Email = link.User.Email
		}
		staff = append(staff, member)
	}
	return staff, nil
}

func (s *companyService) RemoveStaff(ctx context.Context, actorID, targetUserID uint) error {
	if actorID == targetUserID {
		return apperrors.ErrCannotModifySelf
	}

	company, err := s.adminCompany(actorID)
	if err != nil {
		return err
	}

	if err := s.companyRepo.DeleteStaffLink(company.ID, targetUserID); err != nil {
		if errors.Is(err, repositories.ErrStaffLinkNotFound) {
			return apperrors.ErrNotFound(err, "companies", "User is not on the staff roster")
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "staff member removed", "company_id", company.ID, "staff_user_id", targetUserID)
	return nil
}

func (s *companyService) Dashboard(ctx context.Context, actorID uint) (*dto.DashboardSummary, error) {
	company, err := resolveCompany(s.companyRepo, actorID)
	if err != nil {
		return nil, err
	}

	totalJobs, err := s.jobRepo.CountByCompany(company.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	totalApplicants, err := s.companyRepo.CountApplicants(company.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	staff, err := s.companyRepo.FindStaff(company.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	unread, err := s.notificationRepo.CountUnread(actorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.DashboardSummary{
		TotalJobs:           totalJobs,
		TotalApplicants:     totalApplicants,
		StaffCount:          int64(len(staff)),
		UnreadNotifications: unread,
	}, nil
}

package handlers

import (
	"jobnest_backend/internal/services"
	"jobnest_backend/internal/validator"
)

// AppHandlers aggregates every HTTP handler for route registration.
type AppHandlers struct {
	User         *UserHandler
	Job          *JobHandler
	Company      *CompanyHandler
	CompanyAdmin *CompanyAdminHandler
	Application  *ApplicationHandler
	Favorite     *FavoriteHandler
	Profile      *ProfileHandler
	Skill        *SkillHandler
	Interest     *InterestHandler
	Notification *NotificationHandler
	Upload       *UploadHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		User:         NewUserHandler(base, sc.Auth),
		Job:          NewJobHandler(base, sc.Job, sc.Application),
		Company:      NewCompanyHandler(base, sc.Company),
		CompanyAdmin: NewCompanyAdminHandler(base, sc.Company, sc.Auth),
		Application:  NewApplicationHandler(base, sc.Application),
		Favorite:     NewFavoriteHandler(base, sc.Favorite),
		Profile:      NewProfileHandler(base, sc.Profile),
		Skill:        NewSkillHandler(base, sc.Skill),
		Interest:     NewInterestHandler(base, sc.Skill),
		Notification: NewNotificationHandler(base, sc.Notification),
		Upload:       NewUploadHandler(base, sc.Upload),
	}
}

package services

// ServiceContainer aggregates all business services for handler wiring.
type ServiceContainer struct {
	Auth         AuthService
	Job          JobService
	Company      CompanyService
	Application  ApplicationService
	Favorite     FavoriteService
	Profile      ProfileService
	Skill        SkillService
	Notification NotificationService
	Upload       UploadService
}

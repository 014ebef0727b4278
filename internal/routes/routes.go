package routes

import (
	"github.com/gin-gonic/gin"

	"jobnest_backend/internal/handlers"
	"jobnest_backend/internal/middleware"
	"jobnest_backend/internal/models"
	"jobnest_backend/internal/ws"
)

// RegisterRoutes wires every endpoint under /api.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers, wsManager *ws.Manager) {
	api := r.Group("/api")

	companyRoles := []models.UserRole{
		models.UserRoleCompany, models.UserRoleCompanyAdmin, models.UserRoleCompanyStaff,
	}

	users := api.Group("/users")
	{
		users.POST("/register", h.User.Register)
		users.POST("/login", h.User.Login)
		users.POST("/company-login", h.User.LoginCompany)
		users.GET("/me", middleware.AuthMiddleware(), h.User.Me)
	}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", h.Job.List)
		jobs.GET("/:id", h.Job.Get)

		authed := jobs.Group("", middleware.AuthMiddleware())
		{
			company := authed.Group("", middleware.RequireRoles(companyRoles...))
			{
				company.POST("", h.Job.Create)
				company.GET("/my", h.Job.ListMine)
				company.PUT("/:id", h.Job.Update)
				company.PATCH("/:id/status", h.Job.UpdateStatus)
				company.DELETE("/:id", h.Job.Delete)
				company.GET("/:id/applications", h.Job.ListApplications)
			}
		}
	}

	companies := api.Group("/companies")
	{
		companies.GET("", h.Company.List)
		companies.GET("/:id", h.Company.Get)
		companies.GET("/:id/jobs", h.Job.ListByCompany)

		authed := companies.Group("", middleware.AuthMiddleware())
		{
			authed.POST("", middleware.RequireRoles(models.UserRoleCompany), h.Company.Create)
			authed.GET("/me", middleware.RequireRoles(companyRoles...), h.Company.GetMine)
			authed.PUT("/me", middleware.RequireRoles(companyRoles...), h.Company.Update)
			authed.DELETE("/me", middleware.RequireRoles(models.UserRoleCompany, models.UserRoleCompanyAdmin), h.Company.Delete)
		}
	}

	companyAdmin := api.Group("/company-admin")
	{
		companyAdmin.POST("/register", h.CompanyAdmin.Register)
		companyAdmin.POST("/login", h.CompanyAdmin.Login)

		authed := companyAdmin.Group("", middleware.AuthMiddleware(),
			middleware.RequireRoles(companyRoles...))
		{
			authed.GET("/profile", h.Company.GetMine)
			authed.POST("/staff", h.CompanyAdmin.AddStaff)
			authed.GET("/staff", h.CompanyAdmin.ListStaff)
			authed.DELETE("/staff/:userId", h.CompanyAdmin.RemoveStaff)
			authed.GET("/dashboard", h.CompanyAdmin.Dashboard)
		}
	}

	applications := api.Group("/applications", middleware.AuthMiddleware())
	{
		applications.POST("", middleware.RequireRoles(models.UserRoleUser), h.Application.Submit)
		applications.GET("/my", h.Application.ListMine)
		applications.PATCH("/:id/status", middleware.RequireRoles(companyRoles...), h.Application.UpdateStatus)
	}

	favorites := api.Group("/favorite", middleware.AuthMiddleware())
	{
		favorites.POST("/:jobId", h.Favorite.Add)
		favorites.GET("", h.Favorite.List)
		favorites.GET("/check/:jobId", h.Favorite.Check)
		favorites.DELETE("/:id", h.Favorite.Remove)
		favorites.DELETE("/job/:jobId", h.Favorite.RemoveByJob)
	}

	notifications := api.Group("/notification", middleware.AuthMiddleware())
	{
		notifications.GET("", h.Notification.List)
		notifications.GET("/unread-count", h.Notification.UnreadCount)
		notifications.PATCH("/:id/read", h.Notification.MarkRead)
		notifications.PATCH("/read-all", h.Notification.MarkAllRead)
		notifications.DELETE("/:id", h.Notification.Delete)
	}

	profile := api.Group("/profile", middleware.AuthMiddleware())
	{
		profile.POST("", h.Profile.Create)
		profile.GET("", h.Profile.Get)
		profile.PUT("", h.Profile.Update)
		profile.DELETE("", h.Profile.Delete)
	}

	skills := api.Group("/skill", middleware.AuthMiddleware())
	{
		skills.POST("", h.Skill.Add)
		skills.GET("", h.Skill.List)
		skills.PUT("/:id", h.Skill.Update)
		skills.DELETE("/:id", h.Skill.Remove)
	}

	interests := api.Group("/interest", middleware.AuthMiddleware())
	{
		interests.POST("", h.Interest.Add)
		interests.GET("", h.Interest.List)
		interests.DELETE("/:id", h.Interest.Remove)
	}

	upload := api.Group("/upload", middleware.AuthMiddleware())
	{
		upload.POST("", h.Upload.Upload)
		upload.POST("/profile", h.Upload.UploadProfilePicture)
		upload.POST("/cv", h.Upload.UploadCV)
	}

	api.GET("/ws", middleware.AuthMiddleware(), wsManager.ServeWS)
}

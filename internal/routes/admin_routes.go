package routes

import (
	"recruitment_backend/internal/handlers"
	"recruitment_backend/internal/middleware"
	"recruitment_backend/internal/models"

	"github.com/gin-gonic/gin"
)

func SetupAdminRoutes(r *gin.Engine, adminHandler *handlers.AdminHandler) {
	admin := r.Group("/admin")
	{
		admin.GET("/dashboard", middleware.RequirePageRole(models.RoleAdmin), adminHandler.Dashboard)

		actions := admin.Group("", middleware.RequireActionRole(models.RoleAdmin))
		actions.POST("/company/:company_id/status", adminHandler.UpdateCompanyStatus)
		actions.POST("/job/:job_id/status", adminHandler.UpdateJobStatus)
	}
}

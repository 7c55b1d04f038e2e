package routes

import (
	"recruitment_backend/internal/handlers"
	"recruitment_backend/internal/middleware"
	"recruitment_backend/internal/models"

	"github.com/gin-gonic/gin"
)

func SetupCompanyRoutes(r *gin.Engine, companyHandler *handlers.CompanyHandler) {
	company := r.Group("/company")
	{
		// страницы и обычные формы
		pages := company.Group("", middleware.RequirePageRole(models.RoleCompany))
		pages.GET("/dashboard", companyHandler.Dashboard)
		pages.GET("/add-job", companyHandler.AddJobPage)
		pages.POST("/add-job", companyHandler.AddJob)
		pages.GET("/job/:job_id/applicants", companyHandler.JobApplicants)

		company.POST("/application/:app_id/status", middleware.RequireActionRole(models.RoleCompany), companyHandler.UpdateApplicationStatus)
	}
}

package routes

import (
	"recruitment_backend/internal/handlers"
	"recruitment_backend/internal/middleware"
	"recruitment_backend/internal/models"

	"github.com/gin-gonic/gin"
)

func SetupSeekerRoutes(r *gin.Engine, seekerHandler *handlers.SeekerHandler) {
	seeker := r.Group("/seeker")
	{
		seeker.GET("/dashboard", middleware.RequirePageRole(models.RoleSeeker), seekerHandler.Dashboard)
		seeker.POST("/apply/:job_id", middleware.RequireActionRole(models.RoleSeeker), seekerHandler.Apply)
	}
}

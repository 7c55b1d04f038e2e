package routes

import (
	"recruitment_backend/internal/handlers"

	_ "recruitment_backend/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupCommonRoutes(r *gin.Engine, resumeHandler *handlers.ResumeHandler, healthHandler *handlers.HealthHandler) {
	// резюме: права проверяет сервис
	r.GET("/uploads/:filename", resumeHandler.Download)

	r.GET("/healthz", healthHandler.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

package routes

import (
	"recruitment_backend/internal/handlers"
	"recruitment_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует страницы сайта и асинхронные действия.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	SetupPublicRoutes(ginRouter, appHandlers.PublicHandler, appHandlers.AuthHandler)
	SetupSeekerRoutes(ginRouter, appHandlers.SeekerHandler)
	SetupCompanyRoutes(ginRouter, appHandlers.CompanyHandler)
	SetupAdminRoutes(ginRouter, appHandlers.AdminHandler)
	SetupCommonRoutes(ginRouter, appHandlers.ResumeHandler, appHandlers.HealthHandler)

	ginRouter.NoRoute(appHandlers.PublicHandler.NotFound)

	logger.Info("HTTP routes registered", "count", len(ginRouter.Routes()))
}

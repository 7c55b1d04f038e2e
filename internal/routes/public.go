package routes

import (
	"recruitment_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

func SetupPublicRoutes(r *gin.Engine, publicHandler *handlers.PublicHandler, authHandler *handlers.AuthHandler) {
	// каталог
	r.GET("/", publicHandler.Index)
	r.GET("/search", publicHandler.Search)
	r.GET("/job/:id", publicHandler.JobDetail)

	// вход и регистрация
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", authHandler.Register)
	r.GET("/logout", authHandler.Logout)
}

package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке для action-маршрутов:
// {"success": false, "message": "...", "error": {...}}
type ErrorResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Error   *AppError `json:"error"`
}

// GinErrorHandler - обработчик ошибок для Gin
type GinErrorHandler struct {
	Debug bool
}

// Resolve приводит любую ошибку к AppError. Детали внутренних ошибок
// скрываются, если Debug выключен.
func (h *GinErrorHandler) Resolve(err error) *AppError {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}
	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "error", err)
		if !h.Debug {
			appErr = InternalError(nil)
		}
	}
	return appErr
}

// HandleGinError отправляет JSON с ошибкой и прерывает цепочку
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr := h.Resolve(err)
	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{
		Success: false,
		Message: appErr.Message,
		Error:   appErr,
	})
}

// DefaultHandler используется хелпером HandleError; Debug выставляется из конфига.
var DefaultHandler = &GinErrorHandler{Debug: false}

// HandleError - быстрая функция-помощник для Gin
func HandleError(c *gin.Context, err error) {
	DefaultHandler.HandleGinError(c, err)
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"recruitment_backend/internal/logger"
	"recruitment_backend/internal/middleware"
	"recruitment_backend/internal/validator"
	"recruitment_backend/internal/views"
	"recruitment_backend/pkg/apperrors"
	"recruitment_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ============================================================================
// 1. Базовая структура обработчика
// ============================================================================

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// ============================================================================
// 2. Доступ к БД
// ============================================================================

// GetDB извлекает *gorm.DB (пул или транзакцию) из gin.Context.
// Ключ выставляет DBMiddleware.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}

	return db
}

// ============================================================================
// 3. Привязка и валидация
// ============================================================================

// BindAndValidate_JSON - для асинхронных действий: ошибка сразу уходит
// клиентом в виде {success:false, message}.
func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	if err := h.bind(c, obj); err != nil {
		apperrors.HandleError(c, err)
		return false
	}
	return true
}

// BindAndValidate_Form - для HTML-форм: ошибка возвращается, чтобы
// показать ее на той же странице вместе с введенными данными.
func (h *BaseHandler) BindAndValidate_Form(c *gin.Context, obj interface{}) *apperrors.AppError {
	return h.bind(c, obj)
}

func (h *BaseHandler) bind(c *gin.Context, obj interface{}) *apperrors.AppError {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind request body", err, "path", c.Request.URL.Path)
		return apperrors.NewBadRequestError("Invalid request body")
	}

	if err := h.validator.Validate(obj); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			return apperrors.ValidationError(vErr.Errors)
		}
		logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
		return apperrors.InternalError(err)
	}
	return nil
}

// ============================================================================
// 4. Ответы и ошибки
// ============================================================================

// WantsJSON - клиент явно просит JSON (Accept: application/json).
func WantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

// HandleServiceError - JSON-ответ с ошибкой для асинхронных действий.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// RenderPage отдает HTML-страницу или, по Accept, ее данные в JSON.
func (h *BaseHandler) RenderPage(c *gin.Context, status int, name string, page views.Page) {
	if WantsJSON(c) {
		if page.Error != "" {
			c.JSON(status, gin.H{"success": false, "message": page.Error, "form": page.Form})
			return
		}
		c.JSON(status, page.Data)
		return
	}
	page.User = middleware.CurrentIdentity(c)
	c.HTML(status, name, page)
}

// RenderError показывает страницу ошибки (или JSON) для страниц сайта.
func (h *BaseHandler) RenderError(c *gin.Context, err error) {
	appErr := apperrors.DefaultHandler.Resolve(err)
	if appErr.HTTPCode < 500 {
		logger.CtxWarn(c.Request.Context(), "Page error", "error", appErr.Message, "path", c.Request.URL.Path)
	}

	if WantsJSON(c) {
		apperrors.HandleError(c, appErr)
		return
	}
	c.HTML(appErr.HTTPCode, "error", views.Page{
		Title: http.StatusText(appErr.HTTPCode),
		User:  middleware.CurrentIdentity(c),
		Data:  views.ErrorPage{Status: appErr.HTTPCode, Message: appErr.Message},
	})
	c.Abort()
}

// FormErrorMessage - текст ошибки для показа над формой.
func FormErrorMessage(appErr *apperrors.AppError) string {
	details, ok := appErr.Details.(map[string]string)
	if !ok || len(details) == 0 {
		return appErr.Message
	}
	fields := make([]string, 0, len(details))
	for field := range details {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, field+": "+details[field])
	}
	return strings.Join(msgs, "; ")
}

// ============================================================================
// 5. Парсинг параметров
// ============================================================================

func ParseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// ParseParamID читает положительный целый идентификатор из пути.
func ParseParamID(c *gin.Context, key string) (uint, error) {
	valueStr := c.Param(key)
	if valueStr == "" {
		return 0, apperrors.NewBadRequestError("Missing required path parameter: " + key)
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil || value == 0 {
		return 0, apperrors.ErrNotFound(fmt.Errorf("invalid %s %q", key, valueStr))
	}
	return uint(value), nil
}

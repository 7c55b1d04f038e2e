package handlers

import (
	"net/http"

	"recruitment_backend/internal/models"
	"recruitment_backend/internal/services"
	"recruitment_backend/internal/services/dto"
	"recruitment_backend/internal/session"
	"recruitment_backend/internal/views"
	"recruitment_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	sessions    *session.Manager
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		sessions:    sessions,
	}
}

var dashboards = map[models.Role]string{
	models.RoleAdmin:   "/admin/dashboard",
	models.RoleCompany: "/company/dashboard",
	models.RoleSeeker:  "/seeker/dashboard",
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	h.RenderPage(c, http.StatusOK, "login", views.Page{Title: "Log in"})
}

// Login godoc
// @Summary Log in
// @Description Checks the credentials in the table of the selected account type and starts a session
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param user_type formData string true "seeker, company or admin"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 303 "Redirect to the role dashboard"
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if appErr := h.BindAndValidate_Form(c, &req); appErr != nil {
		h.renderLoginError(c, &req, apperrors.ErrInvalidCredentials)
		return
	}

	identity, err := h.authService.Login(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.renderLoginError(c, &req, err)
		return
	}

	if err := h.sessions.Start(c, identity); err != nil {
		h.RenderError(c, apperrors.InternalError(err))
		return
	}

	redirect := dashboards[identity.Role]
	if WantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"success": true, "redirect": redirect, "user_name": identity.Name})
		return
	}
	c.Redirect(http.StatusSeeOther, redirect)
}

func (h *AuthHandler) renderLoginError(c *gin.Context, req *dto.LoginRequest, err error) {
	appErr := apperrors.DefaultHandler.Resolve(err)
	if appErr.HTTPCode >= 500 {
		h.RenderError(c, appErr)
		return
	}
	form := *req
	form.Password = ""
	h.RenderPage(c, appErr.HTTPCode, "login", views.Page{Title: "Log in", Error: appErr.Message, Form: form})
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	h.RenderPage(c, http.StatusOK, "register", views.Page{Title: "Register"})
}

// Register godoc
// @Summary Register a job seeker or a company
// @Description Companies start in the Pending status until an administrator approves them
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param user_type formData string true "seeker or company"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param phone formData string true "Phone"
// @Param city formData string true "City"
// @Param full_name formData string false "Full name (seeker)"
// @Param company_name formData string false "Company name (company)"
// @Param description formData string false "Company description"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if appErr := h.BindAndValidate_Form(c, &req); appErr != nil {
		h.renderRegisterError(c, &req, appErr)
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.renderRegisterError(c, &req, err)
		return
	}

	if WantsJSON(c) {
		c.JSON(http.StatusCreated, resp)
		return
	}
	c.Redirect(http.StatusSeeOther, resp.Redirect)
}

func (h *AuthHandler) renderRegisterError(c *gin.Context, req *dto.RegisterRequest, err error) {
	appErr := apperrors.DefaultHandler.Resolve(err)
	if appErr.HTTPCode >= 500 {
		h.RenderError(c, appErr)
		return
	}
	form := *req
	form.Password = ""
	h.RenderPage(c, appErr.HTTPCode, "register", views.Page{Title: "Register", Error: FormErrorMessage(appErr), Form: form})
}

// Logout завершает сессию и возвращает на главную.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.End(c)
	c.Redirect(http.StatusFound, "/")
}

package handlers

import (
	"net/http"

	"recruitment_backend/internal/middleware"
	"recruitment_backend/internal/services"
	"recruitment_backend/internal/services/dto"
	"recruitment_backend/internal/views"

	"github.com/gin-gonic/gin"
)

type SeekerHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewSeekerHandler(base *BaseHandler, applicationService services.ApplicationService) *SeekerHandler {
	return &SeekerHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

// Dashboard godoc
// @Summary Seeker profile and own applications
// @Tags seeker
// @Produce json
// @Success 200 {object} dto.SeekerDashboard
// @Failure 302 "Redirect to /login"
// @Router /seeker/dashboard [get]
func (h *SeekerHandler) Dashboard(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	dash, err := h.applicationService.SeekerDashboard(c.Request.Context(), h.GetDB(c), identity.ActingID)
	if err != nil {
		h.RenderError(c, err)
		return
	}
	h.RenderPage(c, http.StatusOK, "seeker_dashboard", views.Page{Title: "My applications", Data: dash})
}

// Apply godoc
// @Summary Apply for a published job
// @Description The resume is optional; PDF, DOC or DOCX up to the configured size
// @Tags seeker
// @Accept multipart/form-data
// @Produce json
// @Param job_id path int true "Job ID"
// @Param cover_letter formData string false "Cover letter"
// @Param cv_file formData file false "Resume"
// @Success 200 {object} dto.ActionResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse "Already applied"
// @Failure 413 {object} apperrors.ErrorResponse
// @Failure 415 {object} apperrors.ErrorResponse
// @Router /seeker/apply/{job_id} [post]
func (h *SeekerHandler) Apply(c *gin.Context) {
	jobID, err := ParseParamID(c, "job_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	identity := middleware.CurrentIdentity(c)
	if _, err := h.applicationService.Apply(c.Request.Context(), h.GetDB(c), identity.ActingID, jobID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ActionResponse{Success: true, Message: "Application submitted successfully"})
}

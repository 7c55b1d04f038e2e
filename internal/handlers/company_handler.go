package handlers

import (
	"net/http"

	"recruitment_backend/internal/middleware"
	"recruitment_backend/internal/services"
	"recruitment_backend/internal/services/dto"
	"recruitment_backend/internal/views"
	"recruitment_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	*BaseHandler
	jobService         services.JobService
	applicationService services.ApplicationService
}

func NewCompanyHandler(base *BaseHandler, jobService services.JobService, applicationService services.ApplicationService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:        base,
		jobService:         jobService,
		applicationService: applicationService,
	}
}

// Dashboard godoc
// @Summary Company profile and its jobs with applicant counts
// @Tags company
// @Produce json
// @Success 200 {object} dto.CompanyDashboard
// @Router /company/dashboard [get]
func (h *CompanyHandler) Dashboard(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	dash, err := h.jobService.CompanyDashboard(c.Request.Context(), h.GetDB(c), identity.ActingID)
	if err != nil {
		h.RenderError(c, err)
		return
	}
	h.RenderPage(c, http.StatusOK, "company_dashboard", views.Page{Title: "Company dashboard", Data: dash})
}

func (h *CompanyHandler) AddJobPage(c *gin.Context) {
	h.RenderPage(c, http.StatusOK, "add_job", views.Page{Title: "Post a job"})
}

// AddJob godoc
// @Summary Post a new job
// @Description The job is created in the Pending status and waits for moderation
// @Tags company
// @Accept x-www-form-urlencoded
// @Produce json
// @Param category_name formData string true "Category"
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param city formData string true "City"
// @Param job_type formData string true "Job type"
// @Param salary formData string false "Salary"
// @Param requirements formData string true "Requirements"
// @Success 201 {object} dto.JobResponse
// @Success 303 "Redirect to /company/dashboard"
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /company/add-job [post]
func (h *CompanyHandler) AddJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if appErr := h.BindAndValidate_Form(c, &req); appErr != nil {
		h.renderAddJobError(c, &req, appErr)
		return
	}

	identity := middleware.CurrentIdentity(c)
	job, err := h.jobService.CreateJob(c.Request.Context(), h.GetDB(c), identity.ActingID, &req)
	if err != nil {
		h.renderAddJobError(c, &req, err)
		return
	}

	if WantsJSON(c) {
		c.JSON(http.StatusCreated, job)
		return
	}
	c.Redirect(http.StatusSeeOther, "/company/dashboard")
}

func (h *CompanyHandler) renderAddJobError(c *gin.Context, req *dto.CreateJobRequest, err error) {
	appErr := apperrors.DefaultHandler.Resolve(err)
	if appErr.HTTPCode >= 500 {
		h.RenderError(c, appErr)
		return
	}
	h.RenderPage(c, appErr.HTTPCode, "add_job", views.Page{Title: "Post a job", Error: FormErrorMessage(appErr), Form: *req})
}

// JobApplicants godoc
// @Summary Applications to one of the company's jobs
// @Tags company
// @Produce json
// @Param job_id path int true "Job ID"
// @Success 200 {object} dto.JobApplicants
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /company/job/{job_id}/applicants [get]
func (h *CompanyHandler) JobApplicants(c *gin.Context) {
	jobID, err := ParseParamID(c, "job_id")
	if err != nil {
		h.RenderError(c, err)
		return
	}

	identity := middleware.CurrentIdentity(c)
	applicants, err := h.applicationService.JobApplicants(c.Request.Context(), h.GetDB(c), identity.ActingID, jobID)
	if err != nil {
		h.RenderError(c, err)
		return
	}
	h.RenderPage(c, http.StatusOK, "job_applicants", views.Page{Title: "Applicants: " + applicants.Job.Title, Data: applicants})
}

// UpdateApplicationStatus godoc
// @Summary Accept or reject an application
// @Tags company
// @Accept x-www-form-urlencoded
// @Produce json
// @Param app_id path int true "Application ID"
// @Param status formData string true "Pending, Accepted or Rejected"
// @Param notes formData string false "Internal notes"
// @Success 200 {object} dto.ActionResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /company/application/{app_id}/status [post]
func (h *CompanyHandler) UpdateApplicationStatus(c *gin.Context) {
	appID, err := ParseParamID(c, "app_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	identity := middleware.CurrentIdentity(c)
	if err := h.applicationService.UpdateStatus(c.Request.Context(), h.GetDB(c), identity.ActingID, appID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ActionResponse{Success: true, Message: "Application status updated"})
}

package handlers

import (
	"net/http"

	"recruitment_backend/internal/services"
	"recruitment_backend/internal/services/dto"
	"recruitment_backend/internal/views"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

// Dashboard godoc
// @Summary All companies, jobs and seekers with status counters
// @Tags admin
// @Produce json
// @Success 200 {object} dto.AdminDashboard
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dash, err := h.adminService.Dashboard(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.RenderError(c, err)
		return
	}
	h.RenderPage(c, http.StatusOK, "admin_dashboard", views.Page{Title: "Administration", Data: dash})
}

// UpdateCompanyStatus godoc
// @Summary Approve or reject a company
// @Tags admin
// @Accept x-www-form-urlencoded
// @Produce json
// @Param company_id path int true "Company ID"
// @Param status formData string true "Pending, Approved or Rejected"
// @Success 200 {object} dto.ActionResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /admin/company/{company_id}/status [post]
func (h *AdminHandler) UpdateCompanyStatus(c *gin.Context) {
	companyID, err := ParseParamID(c, "company_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateCompanyStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.adminService.UpdateCompanyStatus(c.Request.Context(), h.GetDB(c), companyID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ActionResponse{Success: true, Message: "Company status updated"})
}

// UpdateJobStatus godoc
// @Summary Moderate a job
// @Tags admin
// @Accept x-www-form-urlencoded
// @Produce json
// @Param job_id path int true "Job ID"
// @Param status formData string true "Pending, Published, Rejected or Hidden"
// @Success 200 {object} dto.ActionResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /admin/job/{job_id}/status [post]
func (h *AdminHandler) UpdateJobStatus(c *gin.Context) {
	jobID, err := ParseParamID(c, "job_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateJobStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.adminService.UpdateJobStatus(c.Request.Context(), h.GetDB(c), jobID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ActionResponse{Success: true, Message: "Job status updated"})
}

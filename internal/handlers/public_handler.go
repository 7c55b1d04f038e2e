package handlers

import (
	"net/http"

	"recruitment_backend/internal/services"
	"recruitment_backend/internal/services/dto"
	"recruitment_backend/internal/views"
	"recruitment_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

var errPageNotFound = apperrors.New(apperrors.CodeNotFound, "page", "Page not found", http.StatusNotFound)

// PublicHandler - каталог вакансий, доступный без входа
type PublicHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewPublicHandler(base *BaseHandler, jobService services.JobService) *PublicHandler {
	return &PublicHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// Index godoc
// @Summary Published jobs, newest first
// @Description Twelve jobs per page plus the cities and categories available for filtering
// @Tags jobs
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.JobListPage
// @Failure 404 {object} apperrors.ErrorResponse "Page out of range"
// @Router / [get]
func (h *PublicHandler) Index(c *gin.Context) {
	page := ParseQueryInt(c, "page", 1)

	list, err := h.jobService.Index(c.Request.Context(), h.GetDB(c), page)
	if err != nil {
		h.RenderError(c, err)
		return
	}
	h.RenderPage(c, http.StatusOK, "index", views.Page{Title: "Jobs", Data: list})
}

// Search godoc
// @Summary Filter published jobs
// @Tags jobs
// @Produce json
// @Param city query string false "City"
// @Param category query string false "Category"
// @Param job_type query string false "Job type"
// @Success 200 {object} dto.SearchResults
// @Router /search [get]
func (h *PublicHandler) Search(c *gin.Context) {
	var req dto.SearchJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.RenderError(c, err)
		return
	}

	results, err := h.jobService.Search(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.RenderError(c, err)
		return
	}
	h.RenderPage(c, http.StatusOK, "search", views.Page{Title: "Search", Data: results})
}

// JobDetail godoc
// @Summary Published job detail
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /job/{id} [get]
func (h *PublicHandler) JobDetail(c *gin.Context) {
	jobID, err := ParseParamID(c, "id")
	if err != nil {
		h.RenderError(c, err)
		return
	}

	job, err := h.jobService.PublicJob(c.Request.Context(), h.GetDB(c), jobID)
	if err != nil {
		h.RenderError(c, err)
		return
	}
	h.RenderPage(c, http.StatusOK, "job_detail", views.Page{Title: job.Title, Data: job})
}

// NotFound - страница для неизвестных маршрутов.
func (h *PublicHandler) NotFound(c *gin.Context) {
	h.RenderError(c, errPageNotFound)
}

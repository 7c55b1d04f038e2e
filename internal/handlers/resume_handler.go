package handlers

import (
	"errors"
	"mime"
	"net/http"

	"recruitment_backend/internal/logger"
	"recruitment_backend/internal/middleware"
	"recruitment_backend/internal/services"
	"recruitment_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	*BaseHandler
	resumeService services.ResumeService
}

func NewResumeHandler(base *BaseHandler, resumeService services.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		BaseHandler:   base,
		resumeService: resumeService,
	}
}

// Download godoc
// @Summary Download a resume
// @Description Admins see every file, seekers their own, companies files attached to applications for their jobs
// @Tags resumes
// @Produce application/octet-stream
// @Param filename path string true "Stored file name"
// @Success 200 {file} file
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 500 {string} string "Storage error"
// @Router /uploads/{filename} [get]
func (h *ResumeHandler) Download(c *gin.Context) {
	ctx := c.Request.Context()
	identity := middleware.CurrentIdentity(c)

	file, err := h.resumeService.Open(ctx, h.GetDB(c), identity, c.Param("filename"))
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == apperrors.CodeStorageError {
			logger.CtxWithError(ctx, "Failed to read resume from storage", err, "filename", c.Param("filename"))
			c.String(http.StatusInternalServerError, "Error downloading file")
			return
		}
		h.RenderError(c, err)
		return
	}
	defer file.Body.Close()

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": file.Name})
	c.DataFromReader(http.StatusOK, file.Size, file.ContentType, file.Body, map[string]string{
		"Content-Disposition": disposition,
	})
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"recruitment_backend/internal/validator"
	"recruitment_backend/internal/views"
	"recruitment_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	renderer, err := views.New()
	require.NoError(t, err)
	r := gin.New()
	r.HTMLRender = renderer
	return r
}

func TestParseParamID(t *testing.T) {
	r := newTestEngine(t)
	var got uint
	var gotErr error
	r.GET("/job/:id", func(c *gin.Context) {
		got, gotErr = ParseParamID(c, "id")
	})

	for path, want := range map[string]uint{"/job/7": 7, "/job/0": 0, "/job/-1": 0, "/job/x": 0} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, got, path)
		if want == 0 {
			assert.Equal(t, http.StatusNotFound, apperrors.HTTPStatus(gotErr), path)
		} else {
			assert.NoError(t, gotErr)
		}
	}
}

func TestFormErrorMessage(t *testing.T) {
	err := apperrors.ValidationError(map[string]string{"title": "is required", "city": "is required"})
	assert.Equal(t, "city: is required; title: is required", FormErrorMessage(err))
	assert.Equal(t, "Invalid email or password", FormErrorMessage(apperrors.ErrInvalidCredentials))
}

func TestRenderError_Negotiation(t *testing.T) {
	h := NewBaseHandler(validator.New())
	r := newTestEngine(t)
	r.GET("/x", func(c *gin.Context) { h.RenderError(c, apperrors.ErrJobNotAvailable) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Accept", "text/html")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Job not found")

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Accept", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Job not found","error":{"code":"NOT_FOUND","domain":"job","message":"Job not found"}}`, w.Body.String())
}

func TestRenderPage_JSONFormError(t *testing.T) {
	h := NewBaseHandler(validator.New())
	r := newTestEngine(t)
	r.GET("/x", func(c *gin.Context) {
		h.RenderPage(c, http.StatusBadRequest, "add_job", views.Page{Error: "title: is required", Form: gin.H{"city": "Riyadh"}})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Accept", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"title: is required","form":{"city":"Riyadh"}}`, w.Body.String())
}

package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"recruitment_backend/internal/models"
	"recruitment_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pdfBody = []byte("%PDF-1.4\n1 0 obj <<>> endobj\ntrailer <<>>\n%%EOF\n")

func TestResume_UploadAndDownload(t *testing.T) {
	m := newMarketplace(t)
	helpers.CreateAdmin(t, m.ts.DB, "root@x.com")
	other := helpers.CreateSeeker(t, m.ts.DB, "Bob", "b@x.com")

	seeker := m.ts.LoginAs(t, models.RoleSeeker, m.seeker.Email)
	res, body := seeker.PostMultipart(t, fmt.Sprintf("/seeker/apply/%d", m.job.ID),
		map[string]string{"cover_letter": "See my CV"}, "../My CV.pdf", pdfBody)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var app models.Application
	require.NoError(t, m.ts.DB.First(&app).Error)
	require.NotNil(t, app.CVFilename)
	name := *app.CVFilename
	assert.Regexp(t, `^\d{8}_\d{6}_My_CV\.pdf$`, name)

	path := "/uploads/" + name

	res, body = seeker.Get(t, path)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, string(pdfBody), body)
	assert.Contains(t, res.Header.Get("Content-Disposition"), "attachment")

	acme := m.ts.LoginAs(t, models.RoleCompany, m.acme.Email)
	res, _ = acme.Get(t, path)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	admin := m.ts.LoginAs(t, models.RoleAdmin, "root@x.com")
	res, _ = admin.Get(t, path)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	globex := m.ts.LoginAs(t, models.RoleCompany, m.globex.Email)
	res, _ = globex.Get(t, path)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	bob := m.ts.LoginAs(t, models.RoleSeeker, other.Email)
	res, _ = bob.Get(t, path)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	anon := m.ts.NewClient(t)
	res, _ = anon.Get(t, path)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = admin.Get(t, "/uploads/20240101_000000_missing.pdf")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"recruitment_backend/internal/models"
	"recruitment_backend/internal/services/dto"
	"recruitment_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type actionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func decodeAction(t *testing.T, body string) actionResult {
	t.Helper()
	var r actionResult
	require.NoError(t, json.Unmarshal([]byte(body), &r), body)
	return r
}

type marketplace struct {
	ts      *helpers.TestServer
	acme    *models.Company
	globex  *models.Company
	seeker  *models.JobSeeker
	job     *models.Job
	pending *models.Job
}

func newMarketplace(t *testing.T, opts ...helpers.Option) marketplace {
	ts := helpers.NewTestServer(t, opts...)
	m := marketplace{
		ts:     ts,
		acme:   helpers.CreateCompany(t, ts.DB, "Acme", "hr@acme.com", models.CompanyStatusApproved),
		globex: helpers.CreateCompany(t, ts.DB, "Globex", "hr@globex.com", models.CompanyStatusApproved),
		seeker: helpers.CreateSeeker(t, ts.DB, "Ann", "a@x.com"),
	}
	m.job = helpers.CreateJob(t, ts.DB, m.acme.ID, "Go Developer", "Riyadh", models.JobStatusPublished)
	m.pending = helpers.CreateJob(t, ts.DB, m.acme.ID, "Draft Role", "Riyadh", models.JobStatusPending)
	return m
}

func (m marketplace) applicationCount(t *testing.T) int64 {
	var n int64
	require.NoError(t, m.ts.DB.Model(&models.Application{}).Where("job_id = ? AND seeker_id = ?", m.job.ID, m.seeker.ID).Count(&n).Error)
	return n
}

func TestApply_WithoutFileThenDuplicate(t *testing.T) {
	m := newMarketplace(t)
	c := m.ts.LoginAs(t, models.RoleSeeker, m.seeker.Email)
	path := fmt.Sprintf("/seeker/apply/%d", m.job.ID)

	res, body := c.PostMultipart(t, path, map[string]string{"cover_letter": "Hello"}, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.True(t, decodeAction(t, body).Success)

	var app models.Application
	require.NoError(t, m.ts.DB.Where("job_id = ?", m.job.ID).First(&app).Error)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.Nil(t, app.CVFilename)

	res, body = c.PostMultipart(t, path, map[string]string{"cover_letter": "Again"}, "", nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	r := decodeAction(t, body)
	assert.False(t, r.Success)
	assert.Contains(t, r.Message, "already applied")
	assert.Equal(t, int64(1), m.applicationCount(t))
}

func TestApply_ConcurrentRequests(t *testing.T) {
	m := newMarketplace(t)
	c := m.ts.LoginAs(t, models.RoleSeeker, m.seeker.Email)
	path := fmt.Sprintf("/seeker/apply/%d", m.job.ID)

	const workers = 6
	statuses := make([]int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, _ := c.PostMultipart(t, path, nil, "", nil)
			statuses[i] = res.StatusCode
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, s := range statuses {
		if s == http.StatusOK {
			ok++
		} else {
			assert.Equal(t, http.StatusConflict, s)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, int64(1), m.applicationCount(t))
}

func TestApply_Rejections(t *testing.T) {
	m := newMarketplace(t, helpers.WithMaxUpload(64))
	seeker := m.ts.LoginAs(t, models.RoleSeeker, m.seeker.Email)
	path := fmt.Sprintf("/seeker/apply/%d", m.job.ID)

	res, body := seeker.PostMultipart(t, path, nil, "cv.exe", []byte("MZ"))
	assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode, body)
	assert.False(t, decodeAction(t, body).Success)

	res, body = seeker.PostMultipart(t, path, nil, "cv.pdf", []byte(strings.Repeat("x", 65)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, res.StatusCode, body)
	assert.Zero(t, m.applicationCount(t))

	res, _ = seeker.PostMultipart(t, fmt.Sprintf("/seeker/apply/%d", m.pending.ID), nil, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	anon := m.ts.NewClient(t)
	res, _ = anon.PostMultipart(t, path, nil, "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	company := m.ts.LoginAs(t, models.RoleCompany, m.acme.Email)
	res, _ = company.PostMultipart(t, path, nil, "", nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestApplicants_OwnerOnly(t *testing.T) {
	m := newMarketplace(t)
	seeker := m.ts.LoginAs(t, models.RoleSeeker, m.seeker.Email)
	res, body := seeker.PostMultipart(t, fmt.Sprintf("/seeker/apply/%d", m.job.ID), map[string]string{"cover_letter": "Hi"}, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var app models.Application
	require.NoError(t, m.ts.DB.First(&app).Error)

	acme := m.ts.LoginAs(t, models.RoleCompany, m.acme.Email)
	res, body = acme.GetJSON(t, fmt.Sprintf("/company/job/%d/applicants", m.job.ID))
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var applicants dto.JobApplicants
	require.NoError(t, json.Unmarshal([]byte(body), &applicants))
	require.Len(t, applicants.Applications, 1)
	assert.Equal(t, "Ann", applicants.Applications[0].Seeker.FullName)

	globex := m.ts.LoginAs(t, models.RoleCompany, m.globex.Email)
	res, _ = globex.Get(t, fmt.Sprintf("/company/job/%d/applicants", m.job.ID))
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body = globex.PostAction(t, fmt.Sprintf("/company/application/%d/status", app.ID), url.Values{"status": {"Accepted"}})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	require.NoError(t, m.ts.DB.First(&app, app.ID).Error)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
}

func TestApplicationStatus_Update(t *testing.T) {
	m := newMarketplace(t)
	seeker := m.ts.LoginAs(t, models.RoleSeeker, m.seeker.Email)
	res, body := seeker.PostMultipart(t, fmt.Sprintf("/seeker/apply/%d", m.job.ID), nil, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var app models.Application
	require.NoError(t, m.ts.DB.First(&app).Error)
	path := fmt.Sprintf("/company/application/%d/status", app.ID)
	acme := m.ts.LoginAs(t, models.RoleCompany, m.acme.Email)

	res, body = acme.PostAction(t, path, url.Values{"status": {"Hired"}})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	res, body = acme.PostAction(t, path, url.Values{"status": {"Accepted"}, "notes": {"Strong candidate"}})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.True(t, decodeAction(t, body).Success)

	require.NoError(t, m.ts.DB.First(&app, app.ID).Error)
	assert.Equal(t, models.ApplicationStatusAccepted, app.Status)
	require.NotNil(t, app.InternalNotes)
	assert.Equal(t, "Strong candidate", *app.InternalNotes)

	res, _ = acme.PostAction(t, path, url.Values{"status": {"Pending"}})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	res, _ = acme.PostAction(t, "/company/application/9999/status", url.Values{"status": {"Rejected"}})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// заметки компании соискателю не показываются
	_, body = seeker.GetJSON(t, "/seeker/dashboard")
	assert.Contains(t, body, "Accepted")
	assert.NotContains(t, body, "Strong candidate")
}

package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"recruitment_backend/internal/models"
	"recruitment_backend/internal/services/dto"
	"recruitment_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobTitles(t *testing.T, body string) []string {
	t.Helper()
	var page struct {
		Jobs []dto.JobResponse `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &page), body)
	titles := make([]string, 0, len(page.Jobs))
	for _, j := range page.Jobs {
		titles = append(titles, j.Title)
	}
	return titles
}

func TestCatalog_OnlyPublishedJobs(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := helpers.CreateCompany(t, ts.DB, "Acme", "hr@acme.com", models.CompanyStatusApproved)
	published := helpers.CreateJob(t, ts.DB, company.ID, "Go Developer", "Riyadh", models.JobStatusPublished)
	hidden := helpers.CreateJob(t, ts.DB, company.ID, "Hidden Role", "Riyadh", models.JobStatusHidden)
	pending := helpers.CreateJob(t, ts.DB, company.ID, "Pending Role", "Jeddah", models.JobStatusPending)

	c := ts.NewClient(t)

	res, body := c.GetJSON(t, "/")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, []string{"Go Developer"}, jobTitles(t, body))

	res, body = c.GetJSON(t, "/search?city=Riyadh")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, []string{"Go Developer"}, jobTitles(t, body))

	res, body = c.GetJSON(t, "/search?city=Jeddah")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, jobTitles(t, body))

	res, _ = c.Get(t, fmt.Sprintf("/job/%d", published.ID))
	assert.Equal(t, http.StatusOK, res.StatusCode)
	for _, id := range []uint{hidden.ID, pending.ID, 9999} {
		res, body = c.Get(t, fmt.Sprintf("/job/%d", id))
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Contains(t, body, "Job not found")
	}

	res, _ = c.Get(t, "/job/abc")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestCatalog_Paging(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := helpers.CreateCompany(t, ts.DB, "Acme", "hr@acme.com", models.CompanyStatusApproved)
	for i := 0; i < dto.IndexPageSize+1; i++ {
		helpers.CreateJob(t, ts.DB, company.ID, fmt.Sprintf("Job %02d", i), "Riyadh", models.JobStatusPublished)
	}
	c := ts.NewClient(t)

	res, body := c.GetJSON(t, "/")
	require.Equal(t, http.StatusOK, res.StatusCode)
	var page dto.JobListPage
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	assert.Len(t, page.Jobs, dto.IndexPageSize)
	assert.True(t, page.HasNext)
	assert.Equal(t, []string{"Riyadh"}, page.Cities)

	res, body = c.GetJSON(t, "/?page=2")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, jobTitles(t, body), 1)

	res, _ = c.Get(t, "/?page=3")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestCompanyJob_PendingUntilPublished(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := helpers.CreateCompany(t, ts.DB, "Acme", "hr@acme.com", models.CompanyStatusApproved)
	helpers.CreateAdmin(t, ts.DB, "root@x.com")

	companyClient := ts.LoginAs(t, models.RoleCompany, company.Email)
	res, body := companyClient.PostForm(t, "/company/add-job", url.Values{
		"category_name": {"IT"},
		"title":         {"Backend Engineer"},
		"description":   {"Build services"},
		"city":          {"Riyadh"},
		"job_type":      {"Full-time"},
		"requirements":  {"Go, SQL"},
	})
	require.Equal(t, http.StatusSeeOther, res.StatusCode, body)
	assert.Equal(t, "/company/dashboard", res.Header.Get("Location"))

	var job models.Job
	require.NoError(t, ts.DB.Where("title = ?", "Backend Engineer").First(&job).Error)
	assert.Equal(t, models.JobStatusPending, job.Status)
	assert.Equal(t, company.ID, job.CompanyID)

	anon := ts.NewClient(t)
	_, body = anon.GetJSON(t, "/")
	assert.NotContains(t, jobTitles(t, body), "Backend Engineer")

	admin := ts.LoginAs(t, models.RoleAdmin, "root@x.com")
	res, body = admin.PostAction(t, fmt.Sprintf("/admin/job/%d/status", job.ID), url.Values{"status": {"Published"}})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	_, body = anon.GetJSON(t, "/")
	assert.Contains(t, jobTitles(t, body), "Backend Engineer")
}

func TestCompanyJob_InvalidFormRerendered(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := helpers.CreateCompany(t, ts.DB, "Acme", "hr@acme.com", models.CompanyStatusPending)
	c := ts.LoginAs(t, models.RoleCompany, company.Email)

	res, body := c.PostForm(t, "/company/add-job", url.Values{"title": {"Half Filled"}})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Half Filled")

	var count int64
	ts.DB.Model(&models.Job{}).Count(&count)
	assert.Zero(t, count)
}

func TestUnknownRoute_NotFoundPage(t *testing.T) {
	ts := helpers.NewTestServer(t)
	c := ts.NewClient(t)

	res, body := c.Get(t, "/no/such/page")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "Page not found")

	res, _ = c.GetJSON(t, "/healthz")
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

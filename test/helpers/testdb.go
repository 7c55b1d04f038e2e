package helpers

import (
	"net/http"
	"net/url"
	"testing"

	"recruitment_backend/internal/auth"
	"recruitment_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// DefaultPassword - пароль всех тестовых учетных записей.
const DefaultPassword = "password123"

func hash(t *testing.T) string {
	t.Helper()
	h, err := auth.HashPassword(DefaultPassword)
	require.NoError(t, err)
	return h
}

func CreateAdmin(t *testing.T, db *gorm.DB, email string) *models.Admin {
	t.Helper()
	admin := &models.Admin{FullName: "Admin", Email: email, PasswordHash: hash(t)}
	require.NoError(t, db.Create(admin).Error)
	return admin
}

func CreateCompany(t *testing.T, db *gorm.DB, name, email string, status models.CompanyStatus) *models.Company {
	t.Helper()
	company := &models.Company{CompanyName: name, Email: email, PasswordHash: hash(t), Phone: "+100", City: "Riyadh", Status: status}
	require.NoError(t, db.Create(company).Error)
	return company
}

func CreateSeeker(t *testing.T, db *gorm.DB, name, email string) *models.JobSeeker {
	t.Helper()
	seeker := &models.JobSeeker{FullName: name, Email: email, PasswordHash: hash(t), Phone: "+200", City: "Riyadh"}
	require.NoError(t, db.Create(seeker).Error)
	return seeker
}

func CreateJob(t *testing.T, db *gorm.DB, companyID uint, title, city string, status models.JobStatus) *models.Job {
	t.Helper()
	job := &models.Job{
		CompanyID:    companyID,
		CategoryName: "IT",
		Title:        title,
		Description:  "Description of " + title,
		City:         city,
		JobType:      "Full-time",
		Requirements: "Go",
		Status:       status,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

// LoginAs открывает сессию и возвращает клиента с cookie.
func (ts *TestServer) LoginAs(t *testing.T, role models.Role, email string) *Client {
	t.Helper()
	c := ts.NewClient(t)
	res, body := c.PostForm(t, "/login", url.Values{
		"user_type": {string(role)},
		"email":     {email},
		"password":  {DefaultPassword},
	})
	require.Equal(t, http.StatusSeeOther, res.StatusCode, "login failed: %s", body)
	return c
}

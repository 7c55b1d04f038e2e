package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"recruitment_backend/database"
	"recruitment_backend/internal/models"
	"recruitment_backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(fmt.Sprintf("sqlite://file:%s?mode=memory&cache=shared", uuid.NewString()), database.Options{Env: "test"})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func strPtr(s string) *string { return &s }

type fixture struct {
	companyA, companyB models.Company
	seeker             models.JobSeeker
	published, pending models.Job
}

func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	companies := repositories.NewCompanyRepository()
	jobs := repositories.NewJobRepository()
	seekers := repositories.NewJobSeekerRepository()

	f := fixture{
		companyA: models.Company{CompanyName: "Acme", Email: "hr@acme.com", PasswordHash: "h", Phone: "1", City: "Riyadh"},
		companyB: models.Company{CompanyName: "Globex", Email: "hr@globex.com", PasswordHash: "h", Phone: "2", City: "Jeddah"},
		seeker:   models.JobSeeker{FullName: "Ann", Email: "a@x.com", PasswordHash: "h", Phone: "3", City: "Riyadh"},
	}
	require.NoError(t, companies.Create(db, &f.companyA))
	require.NoError(t, companies.Create(db, &f.companyB))
	require.NoError(t, seekers.Create(db, &f.seeker))

	f.published = models.Job{CompanyID: f.companyA.ID, CategoryName: "IT", Title: "Go Developer", Description: "d",
		City: "Riyadh", JobType: "Full-time", Requirements: "r", Status: models.JobStatusPublished}
	f.pending = models.Job{CompanyID: f.companyB.ID, CategoryName: "HR", Title: "Recruiter", Description: "d",
		City: "Jeddah", JobType: "Part-time", Requirements: "r"}
	require.NoError(t, jobs.Create(db, &f.published))
	require.NoError(t, jobs.Create(db, &f.pending))
	return f
}

func TestCompanyRepository(t *testing.T) {
	db := newDB(t)
	f := seed(t, db)
	repo := repositories.NewCompanyRepository()

	assert.Equal(t, models.CompanyStatusPending, f.companyA.Status)

	dup := models.Company{CompanyName: "Other", Email: "hr@acme.com", PasswordHash: "h", Phone: "9", City: "X"}
	assert.ErrorIs(t, repo.Create(db, &dup), repositories.ErrEmailTaken)

	exists, err := repo.EmailExists(db, "hr@acme.com")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.UpdateStatus(db, f.companyA.ID, models.CompanyStatusApproved))
	got, err := repo.FindByID(db, f.companyA.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CompanyStatusApproved, got.Status)

	assert.ErrorIs(t, repo.UpdateStatus(db, 999, models.CompanyStatusApproved), repositories.ErrCompanyNotFound)
	_, err = repo.FindByEmail(db, "nobody@x.com")
	assert.ErrorIs(t, err, repositories.ErrCompanyNotFound)

	counts, err := repo.CountByStatus(db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts[models.CompanyStatusApproved])
	assert.EqualValues(t, 1, counts[models.CompanyStatusPending])
	assert.EqualValues(t, 0, counts[models.CompanyStatusRejected])
}

func TestJobRepository_PublishedOnly(t *testing.T) {
	db := newDB(t)
	f := seed(t, db)
	repo := repositories.NewJobRepository()

	jobs, total, err := repo.FindPublishedPage(db, 1, 12)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, jobs, 1)
	assert.Equal(t, f.published.ID, jobs[0].ID)
	require.NotNil(t, jobs[0].Company)
	assert.Equal(t, "Acme", jobs[0].Company.CompanyName)

	_, err = repo.FindPublishedByID(db, f.pending.ID)
	assert.ErrorIs(t, err, repositories.ErrJobNotFound)

	found, err := repo.SearchPublished(db, repositories.JobFilter{City: "Jeddah"})
	require.NoError(t, err)
	assert.Empty(t, found)

	found, err = repo.SearchPublished(db, repositories.JobFilter{City: "Riyadh", Category: "IT", JobType: "Full-time"})
	require.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = repo.SearchPublished(db, repositories.JobFilter{City: "Riyadh", JobType: "Part-time"})
	require.NoError(t, err)
	assert.Empty(t, found)

	cities, err := repo.DistinctPublishedCities(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"Riyadh"}, cities)

	categories, err := repo.DistinctPublishedCategories(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"IT"}, categories)
}

func TestJobRepository_PagingNewestFirst(t *testing.T) {
	db := newDB(t)
	f := seed(t, db)
	repo := repositories.NewJobRepository()

	for i := 0; i < 13; i++ {
		job := models.Job{CompanyID: f.companyA.ID, CategoryName: "IT", Title: fmt.Sprintf("Job %d", i),
			Description: "d", City: "Riyadh", JobType: "Full-time", Requirements: "r",
			Status: models.JobStatusPublished, PostedAt: time.Now().Add(time.Duration(i) * time.Minute)}
		require.NoError(t, repo.Create(db, &job))
	}

	page1, total, err := repo.FindPublishedPage(db, 1, 12)
	require.NoError(t, err)
	assert.EqualValues(t, 14, total)
	require.Len(t, page1, 12)
	assert.Equal(t, "Job 12", page1[0].Title)

	page2, _, err := repo.FindPublishedPage(db, 2, 12)
	require.NoError(t, err)
	assert.Len(t, page2, 2)
}

func TestApplicationRepository(t *testing.T) {
	db := newDB(t)
	f := seed(t, db)
	repo := repositories.NewApplicationRepository()

	app := models.Application{JobID: f.published.ID, SeekerID: f.seeker.ID, CVFilename: strPtr("20240101_120000_cv.pdf")}
	require.NoError(t, repo.Create(db, &app))
	assert.Equal(t, models.ApplicationStatusPending, app.Status)

	again := models.Application{JobID: f.published.ID, SeekerID: f.seeker.ID}
	assert.ErrorIs(t, repo.Create(db, &again), repositories.ErrApplicationExists)

	exists, err := repo.Exists(db, f.published.ID, f.seeker.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.UpdateStatusAndNotes(db, app.ID, models.ApplicationStatusAccepted, strPtr("strong candidate")))
	got, err := repo.FindByID(db, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, got.Status)
	require.NotNil(t, got.InternalNotes)
	assert.Equal(t, "strong candidate", *got.InternalNotes)
	require.NotNil(t, got.Job)
	assert.Equal(t, f.companyA.ID, got.Job.CompanyID)

	bySeeker, err := repo.FindBySeeker(db, f.seeker.ID)
	require.NoError(t, err)
	require.Len(t, bySeeker, 1)
	require.NotNil(t, bySeeker[0].Job.Company)

	byJob, err := repo.FindByJob(db, f.published.ID)
	require.NoError(t, err)
	require.Len(t, byJob, 1)
	assert.Equal(t, "Ann", byJob[0].Seeker.FullName)

	byFile, err := repo.FindByCVFilename(db, "20240101_120000_cv.pdf")
	require.NoError(t, err)
	assert.Len(t, byFile, 1)

	counts, err := repo.CountByJobIDs(db, []uint{f.published.ID, f.pending.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts[f.published.ID])
	assert.EqualValues(t, 0, counts[f.pending.ID])

	assert.ErrorIs(t, repo.UpdateStatusAndNotes(db, 999, models.ApplicationStatusRejected, nil), repositories.ErrApplicationNotFound)
}

func TestDeleteCascades(t *testing.T) {
	db := newDB(t)
	f := seed(t, db)
	apps := repositories.NewApplicationRepository()
	require.NoError(t, apps.Create(db, &models.Application{JobID: f.published.ID, SeekerID: f.seeker.ID}))
	require.NoError(t, apps.Create(db, &models.Application{JobID: f.pending.ID, SeekerID: f.seeker.ID}))

	require.NoError(t, repositories.NewCompanyRepository().Delete(db, f.companyA.ID))

	var jobs, applications int64
	require.NoError(t, db.Model(&models.Job{}).Where("company_id = ?", f.companyA.ID).Count(&jobs).Error)
	require.NoError(t, db.Model(&models.Application{}).Count(&applications).Error)
	assert.Zero(t, jobs)
	assert.EqualValues(t, 1, applications)

	require.NoError(t, repositories.NewJobRepository().Delete(db, f.pending.ID))
	require.NoError(t, db.Model(&models.Application{}).Count(&applications).Error)
	assert.Zero(t, applications)

	assert.ErrorIs(t, repositories.NewJobSeekerRepository().Delete(db, 999), repositories.ErrSeekerNotFound)
	require.NoError(t, repositories.NewJobSeekerRepository().Delete(db, f.seeker.ID))
	assert.ErrorIs(t, repositories.NewCompanyRepository().Delete(db, f.companyA.ID), repositories.ErrCompanyNotFound)
}

func TestSessionRepository(t *testing.T) {
	db := newDB(t)
	repo := repositories.NewSessionRepository()
	now := time.Now().UTC()

	live := models.Session{ID: uuid.NewString(), ActingID: 1, Role: models.RoleSeeker, ExpiresAt: now.Add(time.Hour)}
	dead := models.Session{ID: uuid.NewString(), ActingID: 2, Role: models.RoleCompany, ExpiresAt: now.Add(-time.Hour)}
	require.NoError(t, repo.Create(db, &live))
	require.NoError(t, repo.Create(db, &dead))

	got, err := repo.FindActive(db, live.ID, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.ActingID)

	_, err = repo.FindActive(db, dead.ID, now)
	assert.ErrorIs(t, err, repositories.ErrSessionNotFound)

	n, err := repo.DeleteExpired(db, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, repo.Delete(db, live.ID))
	require.NoError(t, repo.Delete(db, live.ID))
}

func TestAdminRepository(t *testing.T) {
	db := newDB(t)
	repo := repositories.NewAdminRepository()

	admin := models.Admin{FullName: "Root", Email: "admin@x.com", PasswordHash: "h"}
	require.NoError(t, repo.Create(db, &admin))
	assert.ErrorIs(t, repo.Create(db, &models.Admin{FullName: "Two", Email: "admin@x.com", PasswordHash: "h"}), repositories.ErrEmailTaken)

	got, err := repo.FindByEmail(db, "admin@x.com")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.ID)

	_, err = repo.FindByID(db, 42)
	assert.ErrorIs(t, err, repositories.ErrAdminNotFound)
}

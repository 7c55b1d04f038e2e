// Команда seed заполняет базу демонстрационными данными.
package main

import (
	"context"
	"flag"
	"fmt"

	"recruitment_backend/database"
	"recruitment_backend/internal/config"
	"recruitment_backend/internal/logger"
	"recruitment_backend/internal/models"
	"recruitment_backend/internal/services"
	"recruitment_backend/internal/services/dto"
	"recruitment_backend/internal/storage"
	"recruitment_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const demoPassword = "123456"

func main() {
	reset := flag.Bool("reset", false, "drop all tables before seeding")
	flag.Parse()

	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)

	db, err := database.Open(cfg.Database.DSN, database.Options{Env: cfg.Server.Env})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if *reset {
		err = database.Reset(db)
	} else {
		err = database.AutoMigrate(db)
	}
	if err != nil {
		logger.Fatal("Failed to prepare schema", "error", err)
	}

	ctx := context.Background()
	store, err := storage.NewStorage(ctx, storage.Config{Type: "local", BasePath: cfg.Storage.BasePath})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	// без почты: демо-данные не должны рассылать письма
	sc := services.NewServiceContainer(store, nil, services.DefaultResumeConfig())

	if err := seed(ctx, db, sc); err != nil {
		logger.Fatal("Seeding failed", "error", err)
	}

	fmt.Println("Demo accounts (password " + demoPassword + "):")
	fmt.Println("  admin:   admin@example.com")
	fmt.Println("  company: company@example.com")
	fmt.Println("  seeker:  seeker@example.com")
}

func seed(ctx context.Context, db *gorm.DB, sc *services.ServiceContainer) error {
	if _, err := sc.AdminService.EnsureAdmin(ctx, db, "System Administrator", "admin@example.com", demoPassword); err != nil {
		return fmt.Errorf("admin: %w", err)
	}

	companies := []dto.RegisterRequest{
		{UserType: "company", Email: "company@example.com", Password: demoPassword, Phone: "+966501234567", City: "Riyadh",
			CompanyName: "Advanced Technology Co.", Description: "Software development and technical solutions"},
		{UserType: "company", Email: "finance@example.com", Password: demoPassword, Phone: "+966502345678", City: "Jeddah",
			CompanyName: "Financial Consulting Co.", Description: "Financial consulting and accounting"},
	}
	companyIDs := make([]uint, 0, len(companies))
	for i := range companies {
		resp, err := sc.AuthService.Register(ctx, db, &companies[i])
		if apperrors.Is(err, apperrors.ErrEmailAlreadyRegistered) {
			logger.Info("Demo data already present, skipping", "email", companies[i].Email)
			return nil
		}
		if err != nil {
			return fmt.Errorf("company %s: %w", companies[i].Email, err)
		}
		err = sc.AdminService.UpdateCompanyStatus(ctx, db, resp.ID, &dto.UpdateCompanyStatusRequest{Status: string(models.CompanyStatusApproved)})
		if err != nil {
			return err
		}
		companyIDs = append(companyIDs, resp.ID)
	}

	jobs := []struct {
		company int
		req     dto.CreateJobRequest
	}{
		{0, dto.CreateJobRequest{CategoryName: "IT", Title: "Software Engineer - Python", City: "Riyadh", JobType: "Full-time",
			Salary:       "8000 - 12000 SAR",
			Description:  "We are looking for a Python engineer with 3+ years of experience.\n\n- Build web applications\n- Take part in architecture design\n- Write tests",
			Requirements: "- Bachelor's degree in computer science\n- 3+ years with Python\n- SQL and databases"}},
		{0, dto.CreateJobRequest{CategoryName: "IT", Title: "UI/UX Designer", City: "Riyadh", JobType: "Full-time",
			Salary:       "6000 - 9000 SAR",
			Description:  "We are looking for a designer of modern user experiences for web and mobile.",
			Requirements: "- 2+ years of UI/UX design\n- Figma or Adobe XD"}},
		{1, dto.CreateJobRequest{CategoryName: "Accounting", Title: "Financial Accountant", City: "Jeddah", JobType: "Full-time",
			Salary:       "5000 - 7000 SAR",
			Description:  "Monthly financial reports, accounts and invoices, internal audit.",
			Requirements: "- Bachelor's degree in accounting\n- 2+ years of experience"}},
	}
	jobIDs := make([]uint, 0, len(jobs))
	for i := range jobs {
		job, err := sc.JobService.CreateJob(ctx, db, companyIDs[jobs[i].company], &jobs[i].req)
		if err != nil {
			return fmt.Errorf("job %q: %w", jobs[i].req.Title, err)
		}
		err = sc.AdminService.UpdateJobStatus(ctx, db, job.ID, &dto.UpdateJobStatusRequest{Status: string(models.JobStatusPublished)})
		if err != nil {
			return err
		}
		jobIDs = append(jobIDs, job.ID)
	}

	seekers := []dto.RegisterRequest{
		{UserType: "seeker", Email: "seeker@example.com", Password: demoPassword, Phone: "+966503456789", City: "Riyadh", FullName: "Ahmed Mohammed Ali"},
		{UserType: "seeker", Email: "seeker2@example.com", Password: demoPassword, Phone: "+966504567890", City: "Jeddah", FullName: "Fatima Ahmed Salem"},
	}
	seekerIDs := make([]uint, 0, len(seekers))
	for i := range seekers {
		resp, err := sc.AuthService.Register(ctx, db, &seekers[i])
		if err != nil {
			return fmt.Errorf("seeker %s: %w", seekers[i].Email, err)
		}
		seekerIDs = append(seekerIDs, resp.ID)
	}

	if _, err := sc.ApplicationService.Apply(ctx, db, seekerIDs[0], jobIDs[0], &dto.ApplyRequest{
		CoverLetter: "I have solid Python experience and would like to join a strong team.",
	}); err != nil {
		return err
	}
	second, err := sc.ApplicationService.Apply(ctx, db, seekerIDs[1], jobIDs[1], &dto.ApplyRequest{
		CoverLetter: "Three years of interface design, excited about new projects.",
	})
	if err != nil {
		return err
	}
	err = sc.ApplicationService.UpdateStatus(ctx, db, companyIDs[0], second.ID, &dto.UpdateApplicationStatusRequest{
		Status: string(models.ApplicationStatusAccepted),
	})
	if err != nil {
		return err
	}

	logger.Info("Demo data seeded", "companies", len(companyIDs), "jobs", len(jobIDs), "seekers", len(seekerIDs))
	return nil
}

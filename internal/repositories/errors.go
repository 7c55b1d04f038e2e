package repositories

import "errors"

var (
	ErrCompanyNotFound     = errors.New("company not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrSeekerNotFound      = errors.New("job seeker not found")
	ErrAdminNotFound       = errors.New("admin not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrSessionNotFound     = errors.New("session not found")

	ErrEmailTaken        = errors.New("email already registered")
	ErrApplicationExists = errors.New("application already exists for this job and seeker")
)

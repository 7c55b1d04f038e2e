package models

type Role string
type CompanyStatus string
type JobStatus string
type ApplicationStatus string

const (
	RoleAdmin   Role = "admin"
	RoleCompany Role = "company"
	RoleSeeker  Role = "seeker"

	CompanyStatusPending  CompanyStatus = "Pending"
	CompanyStatusApproved CompanyStatus = "Approved"
	CompanyStatusRejected CompanyStatus = "Rejected"

	JobStatusPending   JobStatus = "Pending"
	JobStatusPublished JobStatus = "Published"
	JobStatusRejected  JobStatus = "Rejected"
	JobStatusHidden    JobStatus = "Hidden"

	ApplicationStatusPending  ApplicationStatus = "Pending"
	ApplicationStatusAccepted ApplicationStatus = "Accepted"
	ApplicationStatusRejected ApplicationStatus = "Rejected"
)

// Таблицы допустимых переходов. Повторная установка текущего статуса
// разрешена всегда; в Pending вернуться нельзя.
var (
	companyTransitions = map[CompanyStatus][]CompanyStatus{
		CompanyStatusPending:  {CompanyStatusApproved, CompanyStatusRejected},
		CompanyStatusApproved: {CompanyStatusRejected},
		CompanyStatusRejected: {CompanyStatusApproved},
	}

	jobTransitions = map[JobStatus][]JobStatus{
		JobStatusPending:   {JobStatusPublished, JobStatusRejected, JobStatusHidden},
		JobStatusPublished: {JobStatusHidden, JobStatusRejected},
		JobStatusHidden:    {JobStatusPublished, JobStatusRejected},
		JobStatusRejected:  {JobStatusPublished, JobStatusHidden},
	}

	applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
		ApplicationStatusPending:  {ApplicationStatusAccepted, ApplicationStatusRejected},
		ApplicationStatusAccepted: {ApplicationStatusRejected},
		ApplicationStatusRejected: {ApplicationStatusAccepted},
	}
)

func canTransition[T comparable](table map[T][]T, from, to T) bool {
	if from == to {
		_, known := table[from]
		return known
	}
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

// --- Role ---

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCompany, RoleSeeker:
		return true
	}
	return false
}

// CanSelfRegister - администраторы создаются только сидингом.
func (r Role) CanSelfRegister() bool {
	return r == RoleCompany || r == RoleSeeker
}

// --- CompanyStatus ---

func (s CompanyStatus) Valid() bool {
	_, ok := companyTransitions[s]
	return ok
}

func (s CompanyStatus) CanTransitionTo(next CompanyStatus) bool {
	return canTransition(companyTransitions, s, next)
}

// --- JobStatus ---

func (s JobStatus) Valid() bool {
	_, ok := jobTransitions[s]
	return ok
}

func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	return canTransition(jobTransitions, s, next)
}

// IsPublic - только опубликованные вакансии видны в каталоге.
func (s JobStatus) IsPublic() bool {
	return s == JobStatusPublished
}

// --- ApplicationStatus ---

func (s ApplicationStatus) Valid() bool {
	_, ok := applicationTransitions[s]
	return ok
}

func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	return canTransition(applicationTransitions, s, next)
}

// AllCompanyStatuses и аналоги используются в формах и статистике.
func AllCompanyStatuses() []CompanyStatus {
	return []CompanyStatus{CompanyStatusPending, CompanyStatusApproved, CompanyStatusRejected}
}

func AllJobStatuses() []JobStatus {
	return []JobStatus{JobStatusPending, JobStatusPublished, JobStatusRejected, JobStatusHidden}
}

func AllApplicationStatuses() []ApplicationStatus {
	return []ApplicationStatus{ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected}
}

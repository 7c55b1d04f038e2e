package auth

import "recruitment_backend/internal/models"

// Разрешения на чтение файлов резюме
const (
	PermResumesReadAny        = "resumes:read:any"
	PermResumesReadOwn        = "resumes:read:own"
	PermResumesReadApplicants = "resumes:read:applicants"
)

// Permissions список разрешений по ролям
var Permissions = map[models.Role][]string{
	models.RoleAdmin: {
		PermResumesReadAny,
	},
	models.RoleCompany: {
		PermResumesReadApplicants,
	},
	models.RoleSeeker: {
		PermResumesReadOwn,
	},
}

// HasPermission проверяет есть ли у роли указанное разрешение
func HasPermission(role models.Role, permission string) bool {
	for _, p := range Permissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

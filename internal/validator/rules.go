package validator

import (
	"log"

	"recruitment_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные правила. Пустые значения
// правила пропускают, для них есть 'required'.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// ошибка времени запуска, дальше работать нельзя
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-type': роль, доступная для регистрации и входа через форму
	mustRegister("is-user-type", validateUserType)

	mustRegister("is-company-status", validateCompanyStatus)
	mustRegister("is-job-status", validateJobStatus)
	mustRegister("is-application-status", validateApplicationStatus)
}

func validateUserType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.Role(value).CanSelfRegister()
}

func validateCompanyStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.CompanyStatus(value).Valid()
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.JobStatus(value).Valid()
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ApplicationStatus(value).Valid()
}

package validator

import (
	"log"
	"regexp"

	"github.com/go-playground/validator/v10"

	"jobnest_backend/internal/models"
)

// birthDateRe deliberately matches the exact wire contract: four digits, dash,
// two digits, dash, two digits. Anything else is a 400.
var birthDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// registerCustomRules installs the enum rules used by the DTO validate tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that cannot register is a startup error, not a
			// per-request one.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-job-status", validateJobStatus)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-skill-level", validateSkillLevel)
	mustRegister("is-birth-date", validateBirthDate)
}

// Empty values pass; 'required' handles presence separately.

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleUser, models.UserRoleCompany, models.UserRoleCompanyAdmin, models.UserRoleCompanyStaff:
		return true
	default:
		return false
	}
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidJobStatus(models.JobStatus(value))
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidApplicationStatus(models.ApplicationStatus(value))
}

func validateSkillLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.SkillLevel(value) {
	case models.SkillLevelBeginner, models.SkillLevelIntermediate, models.SkillLevelAdvanced, models.SkillLevelExpert:
		return true
	default:
		return false
	}
}

func validateBirthDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return birthDateRe.MatchString(value)
}

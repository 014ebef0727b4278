package dto

type CreateSkillRequest struct {
	SkillName string `json:"skill_name" validate:"required"`
	Level     string `json:"level" validate:"omitempty,is-skill-level"`
}

type UpdateSkillRequest struct {
	SkillName *string `json:"skill_name,omitempty"`
	Level     *string `json:"level,omitempty" validate:"omitempty,is-skill-level"`
}

type CreateInterestRequest struct {
	InterestArea string `json:"interest_area" validate:"required"`
}

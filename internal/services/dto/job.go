package dto

type CreateJobRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	JobType      string  `json:"job_type"`
	WorkMode     string  `json:"work_mode"`
	Location     string  `json:"location"`
	SalaryMin    float64 `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax    float64 `json:"salary_max" validate:"omitempty,gte=0"`
	Requirements string  `json:"requirements"`
	Benefits     string  `json:"benefits"`
	Status       string  `json:"status" validate:"omitempty,is-job-status"`
}

// UpdateJobRequest uses pointers so that absent fields are left untouched.
type UpdateJobRequest struct {
	Title        *string  `json:"title,omitempty"`
	Description  *string  `json:"description,omitempty"`
	JobType      *string  `json:"job_type,omitempty"`
	WorkMode     *string  `json:"work_mode,omitempty"`
	Location     *string  `json:"location,omitempty"`
	SalaryMin    *float64 `json:"salary_min,omitempty" validate:"omitempty,gte=0"`
	SalaryMax    *float64 `json:"salary_max,omitempty" validate:"omitempty,gte=0"`
	Requirements *string  `json:"requirements,omitempty"`
	Benefits     *string  `json:"benefits,omitempty"`
	Status       *string  `json:"status,omitempty" validate:"omitempty,is-job-status"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" validate:"required,is-job-status"`
}

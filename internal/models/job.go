package models

type Job struct {
	BaseModel
	CompanyID    uint      `gorm:"not null;index" json:"company_id"`
	Title        string    `gorm:"not null" json:"title"`
	JobType      string    `json:"job_type"`
	WorkMode     string    `json:"work_mode"`
	Location     string    `json:"location"`
	SalaryMin    float64   `json:"salary_min"`
	SalaryMax    float64   `json:"salary_max"`
	Description  string    `gorm:"not null" json:"description"`
	Requirements string    `json:"requirements"`
	Benefits     string    `json:"benefits"`
	Status       JobStatus `gorm:"type:varchar(20);default:'active'" json:"status"`

	// Relations
	Company      *Company      `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Applications []Application `gorm:"foreignKey:JobID" json:"applications,omitempty"`
}

package models

import "time"

// Application is unique per (user, job). The composite unique index backs up
// the pre-insert existence check so concurrent applies cannot both land.
type Application struct {
	BaseModel
	UserID    uint              `gorm:"not null;index;uniqueIndex:idx_application_pair" json:"user_id"`
	JobID     uint              `gorm:"not null;index;uniqueIndex:idx_application_pair" json:"job_id"`
	CVURL     string            `json:"cv_url"`
	Status    ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	AppliedAt time.Time         `gorm:"default:now()" json:"applied_at"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Job  *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
}

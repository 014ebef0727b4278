package models

import "time"

type Favorite struct {
	BaseModel
	UserID  uint      `gorm:"not null;index;uniqueIndex:idx_favorite_pair" json:"user_id"`
	JobID   uint      `gorm:"not null;index;uniqueIndex:idx_favorite_pair" json:"job_id"`
	SavedAt time.Time `gorm:"default:now()" json:"saved_at"`

	Job *Job `gorm:"foreignKey:JobID" json:"job,omitempty"`
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  uint           `gorm:"not null;index" json:"user_id"`
	Type    string         `gorm:"not null" json:"type"` // "application_status", "new_application"
	Message string         `json:"message"`
	Data    datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"` // {"application_id": 1, "job_id": 2}
	IsRead  bool           `gorm:"default:false" json:"is_read"`
	ReadAt  *time.Time     `json:"read_at,omitempty"`
}

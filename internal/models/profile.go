package models

// Profile is the job-seeker profile, one per user with role=user.
// BirthDate is stored as the validated YYYY-MM-DD string the client sent.
type Profile struct {
	BaseModel
	UserID         uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName       string `json:"full_name"`
	Phone          string `json:"phone"`
	BirthDate      string `gorm:"type:varchar(10)" json:"birth_date"`
	Bio            string `json:"bio"`
	Location       string `json:"location"`
	ProfilePicture string `json:"profile_picture"`
}

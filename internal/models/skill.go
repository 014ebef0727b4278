package models

type Skill struct {
	BaseModel
	UserID    uint       `gorm:"not null;index;uniqueIndex:idx_user_skill" json:"user_id"`
	SkillName string     `gorm:"not null;uniqueIndex:idx_user_skill" json:"skill_name"`
	Level     SkillLevel `gorm:"type:varchar(20)" json:"level"`
}

type Interest struct {
	BaseModel
	UserID       uint   `gorm:"not null;index;uniqueIndex:idx_user_interest" json:"user_id"`
	InterestArea string `gorm:"not null;uniqueIndex:idx_user_interest" json:"interest_area"`
}

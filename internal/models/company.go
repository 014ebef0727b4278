package models

type Company struct {
	BaseModel
	UserID      uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Name        string `gorm:"not null" json:"name"`
	Industry    string `json:"industry"`
	Size        string `json:"size"`
	Location    string `json:"location"`
	Founded     string `json:"founded"`
	Website     string `json:"website"`
	Description string `json:"description"`
	Vision      string `json:"vision"`
	Mission     string `json:"mission"`
	LogoURL     string `json:"logo_url"`

	// Relations
	Jobs   []Job          `gorm:"foreignKey:CompanyID" json:"jobs,omitempty"`
	Admins []CompanyAdmin `gorm:"foreignKey:CompanyID" json:"admins,omitempty"`
}

// CompanyAdmin links a staff user to a company with administrative rights,
// distinct from the owning user.
type CompanyAdmin struct {
	BaseModel
	CompanyID     uint   `gorm:"not null;index;uniqueIndex:idx_company_admin_pair" json:"company_id"`
	UserID        uint   `gorm:"not null;index;uniqueIndex:idx_company_admin_pair" json:"user_id"`
	RoleInCompany string `gorm:"type:varchar(50)" json:"role_in_company"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

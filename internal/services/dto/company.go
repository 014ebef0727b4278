package dto

type CreateCompanyRequest struct {
	Name        string `form:"name" json:"name" validate:"required"`
	Industry    string `form:"industry" json:"industry"`
	Size        string `form:"size" json:"size"`
	Location    string `form:"location" json:"location"`
	Founded     string `form:"founded" json:"founded"`
	Website     string `form:"website" json:"website"`
	Description string `form:"description" json:"description"`
	Vision      string `form:"vision" json:"vision"`
	Mission     string `form:"mission" json:"mission"`
}

type UpdateCompanyRequest struct {
	Name        *string `form:"name" json:"name,omitempty"`
	Industry    *string `form:"industry" json:"industry,omitempty"`
	Size        *string `form:"size" json:"size,omitempty"`
	Location    *string `form:"location" json:"location,omitempty"`
	Founded     *string `form:"founded" json:"founded,omitempty"`
	Website     *string `form:"website" json:"website,omitempty"`
	Description *string `form:"description" json:"description,omitempty"`
	Vision      *string `form:"vision" json:"vision,omitempty"`
	Mission     *string `form:"mission" json:"mission,omitempty"`
}

// RegisterCompanyAdminRequest creates the admin account, the company and the
// staff link in one transaction.
type RegisterCompanyAdminRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	CompanyName string `json:"company_name" validate:"required"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
}

type AddStaffRequest struct {
	Email         string `json:"email" validate:"required,email"`
	RoleInCompany string `json:"role_in_company"`
}

type StaffMemberDTO struct {
	UserID        uint   `json:"user_id"`
	Email         string `json:"email"`
	RoleInCompany string `json:"role_in_company"`
}

type DashboardSummary struct {
	TotalJobs           int64 `json:"total_jobs"`
	TotalApplicants     int64 `json:"total_applicants"`
	StaffCount          int64 `json:"staff_count"`
	UnreadNotifications int64 `json:"unread_notifications"`
}

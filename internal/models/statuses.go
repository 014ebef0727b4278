package models

type UserRole string
type JobStatus string
type ApplicationStatus string
type SkillLevel string

const (
	UserRoleUser         UserRole = "user"
	UserRoleCompany      UserRole = "company"
	UserRoleCompanyAdmin UserRole = "company_admin"
	UserRoleCompanyStaff UserRole = "company_staff"

	JobStatusActive JobStatus = "active"
	JobStatusDraft  JobStatus = "draft"
	JobStatusClosed JobStatus = "closed"
	JobStatusPaused JobStatus = "paused"

	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusInterview   ApplicationStatus = "interview"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"

	SkillLevelBeginner     SkillLevel = "beginner"
	SkillLevelIntermediate SkillLevel = "intermediate"
	SkillLevelAdvanced     SkillLevel = "advanced"
	SkillLevelExpert       SkillLevel = "expert"
)

// ValidJobStatuses and ValidApplicationStatuses are the allow-lists checked at
// the controller boundary. No transition graph is enforced: any status may be
// set from any other.
var ValidJobStatuses = []JobStatus{
	JobStatusActive, JobStatusDraft, JobStatusClosed, JobStatusPaused,
}

var ValidApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusShortlisted,
	ApplicationStatusInterview, ApplicationStatusAccepted, ApplicationStatusRejected,
}

func IsValidJobStatus(s JobStatus) bool {
	for _, v := range ValidJobStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func IsValidApplicationStatus(s ApplicationStatus) bool {
	for _, v := range ValidApplicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

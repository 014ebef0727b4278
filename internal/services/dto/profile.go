package dto

type CreateProfileRequest struct {
	FullName       string `json:"full_name" validate:"required"`
	Phone          string `json:"phone"`
	BirthDate      string `json:"birth_date" validate:"omitempty,is-birth-date"`
	Bio            string `json:"bio"`
	Location       string `json:"location"`
	ProfilePicture string `json:"profile_picture"`
}

type UpdateProfileRequest struct {
	FullName       *string `json:"full_name,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	BirthDate      *string `json:"birth_date,omitempty" validate:"omitempty,is-birth-date"`
	Bio            *string `json:"bio,omitempty"`
	Location       *string `json:"location,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

package types

// UpdateProfileRequest carries the self-service profile fields. Empty
// strings leave the stored value untouched.
type UpdateProfileRequest struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Address  string `json:"address"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

func (r UpdatePasswordRequest) Validate() string {
	return validateStruct(r)
}

type UpdateNotificationsRequest struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
}

// AdminUpdateUserRequest is the admin user-management edit payload
type AdminUpdateUserRequest struct {
	Username   string `json:"username" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Role       string `json:"role" validate:"omitempty,oneof=user admin"`
	IsVerified *bool  `json:"isVerified"`
}

func (r AdminUpdateUserRequest) Validate() string {
	return validateStruct(r)
}

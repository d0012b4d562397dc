package types

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (r RegisterRequest) Validate() string {
	return validateStruct(r)
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

func (r VerifyOTPRequest) Validate() string {
	return validateStruct(r)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) Validate() string {
	return validateStruct(r)
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r ForgotPasswordRequest) Validate() string {
	return validateStruct(r)
}

type ResendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Type  string `json:"type" validate:"omitempty,oneof=registration reset"`
}

func (r ResendOTPRequest) Validate() string {
	return validateStruct(r)
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

func (r ResetPasswordRequest) Validate() string {
	return validateStruct(r)
}

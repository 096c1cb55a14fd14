package dtos

// ----------------------
// Login code issuance
// ----------------------

type SendOTPRequest struct {
	Email string `json:"email" validate:"required"`
}
type SendOTPResponse struct {
	Message string `json:"message"`
}

// ----------------------
// Login code verification
// ----------------------

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}
type VerifyOTPResponse struct {
	Message string `json:"message"`
}

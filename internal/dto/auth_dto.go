package dto

// SignupRequest starts the two-step email verification flow
type SignupRequest struct {
	Email string `json:"email" binding:"required,email" example:"a@x.com"`
}

// SigninRequest exchanges a verification code for an access token
type SigninRequest struct {
	Email            string `json:"email" binding:"required,email" example:"a@x.com"`
	VerificationCode string `json:"verificationCode" binding:"required" example:"482913"`
}

// SigninResponse carries the signed, time-boxed access token
type SigninResponse struct {
	AccessToken string `json:"accessToken"`
}

// MessageResponse is a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
	oauthURL    string
	clientID    string
}

func NewAuthHandler(authService service.AuthService, oauthBaseURL, clientID string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		oauthURL:    oauthBaseURL,
		clientID:    clientID,
	}
}

// Signup issues a verification code and mails it to the given address.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "A valid email is required")
		return
	}

	if err := h.authService.Signup(c.Request.Context(), req.Email); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, dto.MessageResponse{Message: "Verification code sent"})
}

// Signin exchanges a verification code for an access token.
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Email and verification code are required")
		return
	}

	resp, err := h.authService.Signin(c.Request.Context(), req.Email, req.VerificationCode)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resp)
}

// GithubRedirect sends the browser to GitHub's authorize page.
func (h *AuthHandler) GithubRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, h.oauthURL+"/login/oauth/authorize?client_id="+h.clientID)
}

// GithubCallback completes the OAuth flow and returns an access token.
func (h *AuthHandler) GithubCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Missing authorization code")
		return
	}

	resp, err := h.authService.GithubCallback(c.Request.Context(), code)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resp)
}

package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/client"
	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/mailer"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
	"taskboard-api/internal/util"
)

// AuthService defines the interface for the passwordless auth flow.
type AuthService interface {
	// Signup issues a fresh verification code for email and mails it.
	// Calling it again overwrites the previous code.
	Signup(ctx context.Context, email string) error
	// Signin exchanges a verification code for an access token.
	Signin(ctx context.Context, email, code string) (*dto.SigninResponse, error)
	// GithubCallback completes the OAuth flow: exchanges the code,
	// fetches the profile, upserts the user and issues an access token.
	GithubCallback(ctx context.Context, code string) (*dto.SigninResponse, error)
}

type authServiceImpl struct {
	userRepo  repository.UserRepository
	mail      mailer.Sender
	github    client.GithubClient
	jwtSecret string
	jwtTTL    time.Duration
	logger    *zap.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(
	userRepo repository.UserRepository,
	mail mailer.Sender,
	github client.GithubClient,
	jwtSecret string,
	jwtTTL time.Duration,
	logger *zap.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:  userRepo,
		mail:      mail,
		github:    github,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
		logger:    logger,
	}
}

func (s *authServiceImpl) Signup(ctx context.Context, email string) error {
	code, err := util.GenerateVerificationCode()
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to generate verification code", err.Error())
	}

	user := &domain.User{
		Email:            email,
		VerificationCode: code,
	}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to store verification code", err.Error())
	}

	if err := s.mail.SendVerificationCode(email, code); err != nil {
		return response.NewAppError(response.ErrCodeUpstream, "Failed to send verification code", err.Error())
	}

	s.logger.Info("verification code issued", zap.String("email", email))
	return nil
}

func (s *authServiceImpl) Signin(ctx context.Context, email, code string) (*dto.SigninResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid email or verification code", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load user", err.Error())
	}

	// codes do not expire and stay valid until the next signup
	if user.VerificationCode == "" || user.VerificationCode != code {
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid email or verification code", "")
	}

	token, err := util.SignAccessToken(email, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to sign access token", err.Error())
	}

	s.logger.Info("user signed in", zap.String("email", email))
	return &dto.SigninResponse{AccessToken: token}, nil
}

func (s *authServiceImpl) GithubCallback(ctx context.Context, code string) (*dto.SigninResponse, error) {
	accessToken, err := s.github.ExchangeOAuthCode(ctx, code)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeUpstream, "GitHub code exchange failed", err.Error())
	}

	profile, err := s.github.FetchUser(ctx, accessToken)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeUpstream, "Failed to fetch GitHub profile", err.Error())
	}
	if profile.Email == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "GitHub account has no public email", "")
	}

	user := &domain.User{
		Email:       profile.Email,
		Name:        profile.Name,
		AvatarURL:   profile.Avatar,
		GithubLogin: profile.Login,
	}
	if err := s.userRepo.UpsertProfile(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to store user", err.Error())
	}

	token, err := util.SignAccessToken(profile.Email, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to sign access token", err.Error())
	}

	s.logger.Info("user signed in via github", zap.String("email", profile.Email))
	return &dto.SigninResponse{AccessToken: token}, nil
}

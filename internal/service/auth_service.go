package service

import (
	"context"
	"strings"

	"carlookup/internal/apperrors"
	"carlookup/internal/dto"
	"carlookup/internal/utils"

	"go.uber.org/zap"
)

// Both unknown-username and wrong-password failures return this exact
// message so the response never reveals which field was wrong.
const msgInvalidCredentials = "Invalid credentials"

type AuthService struct {
	newUOW UnitOfWorkFactory
	tokens *utils.TokenService
	log    *zap.Logger
}

func NewAuthService(newUOW UnitOfWorkFactory, tokens *utils.TokenService, log *zap.Logger) *AuthService {
	return &AuthService{
		newUOW: newUOW,
		tokens: tokens,
		log:    log,
	}
}

// Authenticate verifies the credentials and issues a bearer token carrying
// the user's role claims.
func (s *AuthService) Authenticate(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error) {
	s.log.Info("Authenticating user", zap.String("username", req.Username))

	if err := validateLoginRequest(req); err != nil {
		s.log.Warn("Login request validation failed", zap.String("username", req.Username))
		return dto.TokenResponse{}, err
	}

	uow := s.newUOW()
	defer uow.Release()

	user, err := uow.Users().GetByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to look up user", zap.String("username", req.Username), zap.Error(err))
		return dto.TokenResponse{}, err
	}
	if user == nil {
		s.log.Warn("Authentication failed: user not found", zap.String("username", req.Username))
		return dto.TokenResponse{}, apperrors.NewUnauthorized(msgInvalidCredentials)
	}

	if !utils.VerifyPassword(req.Password, user.Salt, user.PasswordHash) {
		s.log.Warn("Authentication failed: invalid password", zap.String("username", req.Username))
		return dto.TokenResponse{}, apperrors.NewUnauthorized(msgInvalidCredentials)
	}

	if !user.IsActive {
		s.log.Warn("Authentication failed: account inactive", zap.String("username", req.Username))
		return dto.TokenResponse{}, apperrors.NewUnauthorized("Account is inactive")
	}

	roles := user.RoleNames()
	token, err := s.tokens.GenerateToken(user.Username, roles)
	if err != nil {
		s.log.Error("Failed to generate token", zap.String("username", req.Username), zap.Error(err))
		return dto.TokenResponse{}, err
	}

	s.log.Info("Authentication successful",
		zap.String("username", req.Username),
		zap.Strings("roles", roles),
	)

	return dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   s.tokens.GetExpirationSeconds(),
		Roles:       roles,
	}, nil
}

func validateLoginRequest(req dto.LoginRequest) error {
	var fields []apperrors.FieldError

	if strings.TrimSpace(req.Username) == "" {
		fields = append(fields, apperrors.FieldError{Field: "username", Message: "Username is required"})
	} else if len(req.Username) > 50 {
		fields = append(fields, apperrors.FieldError{Field: "username", Message: "Username must be at most 50 characters"})
	}

	if req.Password == "" {
		fields = append(fields, apperrors.FieldError{Field: "password", Message: "Password is required"})
	} else if len(req.Password) > 128 {
		fields = append(fields, apperrors.FieldError{Field: "password", Message: "Password must be at most 128 characters"})
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields...)
	}
	return nil
}

package service

import (
	"context"

	"scan-kart/internal/model"

	"github.com/rs/zerolog"
)

// Authenticator performs the backend login and account creation.
type Authenticator interface {
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, email, password string) error
	Logout()
}

// authService implements AuthService.
type authService struct {
	client Authenticator
	logger zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(client Authenticator, logger zerolog.Logger) AuthService {
	return &authService{
		client: client,
		logger: logger.With().Str("service", "auth").Logger(),
	}
}

// Login validates the request and authenticates the operator.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) error {
	if req == nil {
		return model.ErrMissingCredentials
	}
	if err := s.client.Login(ctx, req.Email, req.Password); err != nil {
		s.logger.Warn().Err(err).Msg("login failed")
		return err
	}
	return nil
}

// Signup creates an operator account. The operator still has to log in.
func (s *authService) Signup(ctx context.Context, req *model.SignupRequest) error {
	if req == nil {
		return model.ErrMissingCredentials
	}
	if err := s.client.Signup(ctx, req.Email, req.Password); err != nil {
		s.logger.Warn().Err(err).Msg("signup failed")
		return err
	}
	return nil
}

// Logout clears the operator session.
func (s *authService) Logout() {
	s.client.Logout()
}

package service

import (
	"context"
	"strings"
	"time"

	"kas-dashboard-svc/internal/session"
	"kas-dashboard-svc/pkg/logger"
)

// AuthService interface defines session lifecycle methods
type AuthService interface {
	Login(ctx context.Context, username, password string) (*session.Session, error)
	Logout(ctx context.Context) (string, error)
	Current() (session.Session, bool)
}

// authService implements AuthService interface
type authService struct {
	api      AuthAPI
	sessions *session.Store
	logger   *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(api AuthAPI, sessions *session.Store, logger *logger.Logger) AuthService {
	return &authService{
		api:      api,
		sessions: sessions,
		logger:   logger,
	}
}

// Login authenticates against the kas API and starts the session
func (s *authService) Login(ctx context.Context, username, password string) (*session.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, newValidationError("username", "username is required")
	}
	if password == "" {
		return nil, newValidationError("password", "password is required")
	}

	resp, err := s.api.Login(ctx, username, password)
	if err != nil {
		s.logger.WithError(err).WithField("username", username).Error("Login failed")
		return nil, err
	}

	sess := s.sessions.Begin(resp.Token, resp.Role, username, time.Duration(resp.ExpiresIn)*time.Second)
	s.logger.WithFields(map[string]interface{}{
		"username":   username,
		"role":       resp.Role,
		"expires_in": resp.ExpiresIn,
	}).Info("Session started")
	return &sess, nil
}

// Logout ends the remote session. The local session ends even when the remote call fails.
func (s *authService) Logout(ctx context.Context) (string, error) {
	defer s.sessions.End()

	resp, err := s.api.Logout(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Logout failed")
		return "", err
	}

	s.logger.WithField("message", resp.Message).Info("Session ended")
	return resp.Message, nil
}

// Current returns the active session
func (s *authService) Current() (session.Session, bool) {
	return s.sessions.Current()
}

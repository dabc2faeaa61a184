package service

import (
	"vokabel/internal/repository"

	"go.uber.org/zap"
)

// AuthService gates bot access behind a shared password
type AuthService struct {
	userRepo    repository.UserRepository
	botPassword string
	logger      *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, botPassword string, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		botPassword: botPassword,
		logger:      logger,
	}
}

// EnsureUser registers the user if needed and reports authorization
func (s *AuthService) EnsureUser(userID int64) (bool, error) {
	return s.userRepo.EnsureUser(userID)
}

// TryPassword checks the password and authorizes the user on a match
func (s *AuthService) TryPassword(userID int64, password string) (bool, error) {
	if password != s.botPassword {
		return false, nil
	}

	if err := s.userRepo.AuthorizeUser(userID); err != nil {
		return false, err
	}

	s.logger.Info("User authorized", zap.Int64("user_id", userID))
	return true, nil
}

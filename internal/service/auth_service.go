package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"site_backend/internal/model"
	"site_backend/internal/repository"
	"site_backend/internal/utils"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrAdminAlreadyExists = errors.New("admin already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPassword    = errors.New("invalid password")
)

// AuthService provides authentication related services
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password string) (*model.User, error)
	SeedAdmin(ctx context.Context) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

// Login checks the credentials and returns a signed token for the user
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrInvalidPassword
	}

	token, err := s.jwtUtil.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Register creates another administrator account
func (s *authService) Register(ctx context.Context, username, password string) (*model.User, error) {
	return s.createUser(ctx, username, password, ErrUserAlreadyExists)
}

// SeedAdmin creates the well-known bootstrap admin. It refuses to run twice.
func (s *authService) SeedAdmin(ctx context.Context) (*model.User, error) {
	return s.createUser(ctx, model.DefaultAdminUsername, model.DefaultAdminPassword, ErrAdminAlreadyExists)
}

func (s *authService) createUser(ctx context.Context, username, password string, errExists error) (*model.User, error) {
	existingUser, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, errExists
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent insert of the same username
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, errExists
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}
	return user, nil
}

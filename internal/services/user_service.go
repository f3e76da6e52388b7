package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"coderrBack/internal/models"
	"coderrBack/internal/repositories"
	"coderrBack/utils"
)

type UserService struct {
	UserRepo     *repositories.UserRepository
	TokenManager *utils.Manager
	Storage      *utils.S3Storage
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
}

func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error) {
	if req.Username == "" {
		return models.AuthResponse{}, models.NewValidationError("username", "This field is required.")
	}
	if req.Email == "" {
		return models.AuthResponse{}, models.NewValidationError("email", "This field is required.")
	}
	if req.Password == "" {
		return models.AuthResponse{}, models.NewValidationError("password", "This field is required.")
	}
	if req.Password != req.RepeatedPassword {
		return models.AuthResponse{}, models.NewValidationError("repeated_password", "Passwords do not match.")
	}
	if len(req.Password) < 8 {
		return models.AuthResponse{}, models.NewValidationError("password", "Password must be at least 8 characters long.")
	}
	if req.Role != models.RoleCustomer && req.Role != models.RoleBusiness {
		return models.AuthResponse{}, models.NewValidationError("type", "Must be either 'customer' or 'business'.")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.AuthResponse{}, err
	}

	user, err := s.UserRepo.CreateUser(ctx, models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     req.Role,
	})
	if err != nil {
		return models.AuthResponse{}, err
	}

	return s.issueTokens(ctx, user)
}

func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return models.AuthResponse{}, models.ErrInvalidCredentials
	}

	user, err := s.UserRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return models.AuthResponse{}, models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.AuthResponse{}, models.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

func (s *UserService) issueTokens(ctx context.Context, user models.User) (models.AuthResponse, error) {
	accessToken, err := s.TokenManager.NewAccessToken(user.ID, user.Role, s.AccessTTL)
	if err != nil {
		return models.AuthResponse{}, err
	}

	refreshToken, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		refreshToken = uuid.New().String()
	}

	err = s.UserRepo.CreateSession(ctx, models.Session{
		UserID:       user.ID,
		Role:         user.Role,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.RefreshTTL),
	})
	if err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		Username:     user.Username,
		Email:        user.Email,
		UserID:       user.ID,
	}, nil
}

func (s *UserService) GetProfileByID(ctx context.Context, id int) (models.Profile, error) {
	user, err := s.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		return models.Profile{}, err
	}
	return user.ToProfile(), nil
}

// UpdateProfile patches the profile fields. Only the account owner may do
// this; the role is never updatable.
func (s *UserService) UpdateProfile(ctx context.Context, id, requesterID int, patch models.ProfilePatch) (models.Profile, error) {
	if id != requesterID {
		return models.Profile{}, models.ErrForbidden
	}
	user, err := s.UserRepo.UpdateProfile(ctx, id, patch)
	if err != nil {
		return models.Profile{}, err
	}
	return user.ToProfile(), nil
}

func (s *UserService) GetProfilesByRole(ctx context.Context, role string) ([]models.Profile, error) {
	users, err := s.UserRepo.GetUsersByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	profiles := []models.Profile{}
	for _, u := range users {
		profiles = append(profiles, u.ToProfile())
	}
	return profiles, nil
}

func (s *UserService) UploadProfileFile(ctx context.Context, id, requesterID int, file []byte, fileName, contentType string) (string, error) {
	if id != requesterID {
		return "", models.ErrForbidden
	}
	if _, err := s.UserRepo.GetUserByID(ctx, id); err != nil {
		return "", err
	}

	storedName := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(fileName))
	url, err := s.Storage.UploadFile(file, storedName, "profiles", contentType)
	if err != nil {
		return "", err
	}
	if err := s.UserRepo.UpdateUserFile(ctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}

package services

import (
	"context"
	"errors"
	"testing"

	"coderrBack/internal/models"
)

func signUpValidationField(t *testing.T, req models.SignUpRequest) string {
	t.Helper()

	s := &UserService{}
	_, err := s.SignUp(context.Background(), req)
	if err == nil {
		t.Fatalf("expected validation error for %+v", req)
	}

	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	return validationErr.Field
}

func TestSignUpValidation(t *testing.T) {
	base := models.SignUpRequest{
		Username:         "exampleUsername",
		Email:            "example@mail.de",
		Password:         "examplePassword",
		RepeatedPassword: "examplePassword",
		Role:             models.RoleCustomer,
	}

	req := base
	req.Username = ""
	if field := signUpValidationField(t, req); field != "username" {
		t.Errorf("expected field 'username', got %q", field)
	}

	req = base
	req.Email = ""
	if field := signUpValidationField(t, req); field != "email" {
		t.Errorf("expected field 'email', got %q", field)
	}

	req = base
	req.RepeatedPassword = "somethingElse"
	if field := signUpValidationField(t, req); field != "repeated_password" {
		t.Errorf("expected field 'repeated_password', got %q", field)
	}

	req = base
	req.Password = "short"
	req.RepeatedPassword = "short"
	if field := signUpValidationField(t, req); field != "password" {
		t.Errorf("expected field 'password', got %q", field)
	}

	req = base
	req.Role = "admin"
	if field := signUpValidationField(t, req); field != "type" {
		t.Errorf("expected field 'type', got %q", field)
	}
}

func TestSignInEmptyCredentials(t *testing.T) {
	s := &UserService{}

	_, err := s.SignIn(context.Background(), models.SignInRequest{})
	if !errors.Is(err, models.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	_, err = s.SignIn(context.Background(), models.SignInRequest{Username: "exampleUsername"})
	if !errors.Is(err, models.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for missing password, got %v", err)
	}
}

func TestUpdateProfileOwnerOnly(t *testing.T) {
	s := &UserService{}

	_, err := s.UpdateProfile(context.Background(), 1, 2, models.ProfilePatch{})
	if !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

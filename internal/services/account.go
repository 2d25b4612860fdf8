package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/schooldesk/ordering/internal/models"
	"github.com/schooldesk/ordering/internal/validation"
)

// Passwords must be strictly longer than this many characters.
const passwordFloor = 16

// SignupInput carries the raw signup fields as submitted.
type SignupInput struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Title          string `json:"title"`
	School         string `json:"school"`
	Phone          string `json:"phone"`
	DeliveryWindow string `json:"delivery_window"`
}

// AccountService owns signup validation and credential checks.
type AccountService struct {
	employees EmployeeStore
	schools   SchoolStore
	domain    string
}

func NewAccountService(employees EmployeeStore, schools SchoolStore, orgEmailDomain string) *AccountService {
	return &AccountService{employees: employees, schools: schools, domain: orgEmailDomain}
}

// SignUp validates every field before persisting anything, so a rejected
// attempt reports the full set of violations in one round trip.
func (s *AccountService) SignUp(ctx context.Context, in SignupInput) (*models.Employee, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	v := validation.Violations{}
	validation.Required("email", in.Email, v)
	validation.Required("password", in.Password, v)
	validation.Required("first_name", in.FirstName, v)
	validation.Required("last_name", in.LastName, v)
	validation.Required("title", in.Title, v)
	validation.Required("school", in.School, v)
	validation.Required("phone", in.Phone, v)
	validation.Required("delivery_window", in.DeliveryWindow, v)
	if in.Email != "" {
		validation.EmailDomain("email", in.Email, s.domain, v)
	}
	if in.Password != "" {
		validation.LongerThan("password", in.Password, passwordFloor, v)
	}
	if !v.Empty() {
		return nil, &ValidationError{Violations: v}
	}

	school, err := s.schools.ByName(ctx, strings.TrimSpace(in.School))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &ValidationError{Violations: validation.Violations{"school": "unknown"}}
		}
		return nil, err
	}

	if _, err := s.employees.ByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	emp := &models.Employee{
		Email:          in.Email,
		PasswordHash:   string(hash),
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		Title:          strings.TrimSpace(in.Title),
		Phone:          strings.TrimSpace(in.Phone),
		DeliveryWindow: strings.TrimSpace(in.DeliveryWindow),
		SchoolID:       school.ID,
	}
	if err := s.employees.Create(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// ChangePassword swaps the stored hash after verifying the current password.
// The new password has to clear the same bar as at signup.
func (s *AccountService) ChangePassword(ctx context.Context, employeeID uint, current, newPass, confirm string) error {
	v := validation.Violations{}
	validation.Required("current", current, v)
	validation.Required("new", newPass, v)
	if newPass != "" {
		validation.LongerThan("new", newPass, passwordFloor, v)
	}
	if confirm != newPass {
		v["confirm"] = "mismatch"
	}
	if !v.Empty() {
		return &ValidationError{Violations: v}
	}

	emp, err := s.employees.ByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(current)) != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.employees.UpdatePassword(ctx, employeeID, string(hash))
}

// SignIn checks credentials. An unknown address and a wrong password are
// indistinguishable from the outside.
func (s *AccountService) SignIn(ctx context.Context, email, password string) (*models.Employee, error) {
	emp, err := s.employees.ByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return emp, nil
}

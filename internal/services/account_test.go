package services_test

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/schooldesk/ordering/internal/models"
	"github.com/schooldesk/ordering/internal/services"
	"github.com/schooldesk/ordering/internal/store"
)

const orgDomain = "schools.nyc.gov"

func newAccountService(t *testing.T) (*services.AccountService, *testAccountDeps) {
	db := setupTestDB(t, t.Name())
	deps := &testAccountDeps{db: db, school: seedSchool(t, db)}
	svc := services.NewAccountService(store.NewEmployees(db), store.NewSchools(db), orgDomain)
	return svc, deps
}

type testAccountDeps struct {
	db     *gorm.DB
	school models.School
}

func validSignup() services.SignupInput {
	return services.SignupInput{
		Email:          "j.rivera@schools.nyc.gov",
		Password:       "a-long-enough-password",
		FirstName:      "Jordan",
		LastName:       "Rivera",
		Title:          "Teacher",
		School:         "P.S. 082 - The Hammond School",
		Phone:          "718-555-0199",
		DeliveryWindow: "Mon/Wed 1-3pm",
	}
}

func TestSignUpCollectsEveryViolation(t *testing.T) {
	svc, _ := newAccountService(t)

	_, err := svc.SignUp(context.Background(), services.SignupInput{})
	var verr *services.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error got %v", err)
	}
	for _, field := range []string{
		"email", "password", "first_name", "last_name",
		"title", "school", "phone", "delivery_window",
	} {
		if verr.Violations[field] != "required" {
			t.Fatalf("expected %q to be required, violations: %v", field, verr.Violations)
		}
	}
}

func TestSignUpRejectsWeakPasswordAndForeignDomain(t *testing.T) {
	svc, _ := newAccountService(t)

	in := validSignup()
	in.Email = "j.rivera@gmail.com"
	in.Password = "exactly16chars!!" // 16 runes, needs more than 16

	_, err := svc.SignUp(context.Background(), in)
	var verr *services.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error got %v", err)
	}
	if verr.Violations["email"] != "invalid_domain" {
		t.Fatalf("expected invalid_domain, violations: %v", verr.Violations)
	}
	if verr.Violations["password"] != "too_short" {
		t.Fatalf("expected too_short, violations: %v", verr.Violations)
	}
}

func TestSignUpUnknownSchool(t *testing.T) {
	svc, _ := newAccountService(t)

	in := validSignup()
	in.School = "P.S. 999 - Nowhere"

	_, err := svc.SignUp(context.Background(), in)
	var verr *services.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error got %v", err)
	}
	if verr.Violations["school"] != "unknown" {
		t.Fatalf("expected unknown school, violations: %v", verr.Violations)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()

	if _, err := svc.SignUp(ctx, validSignup()); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if _, err := svc.SignUp(ctx, validSignup()); !errors.Is(err, services.ErrEmailTaken) {
		t.Fatalf("expected email taken got %v", err)
	}
}

func TestSignUpStoresBcryptHash(t *testing.T) {
	svc, deps := newAccountService(t)

	emp, err := svc.SignUp(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if emp.ID == 0 {
		t.Fatal("expected persisted employee")
	}
	if emp.SchoolID != deps.school.ID {
		t.Fatalf("expected school %d got %d", deps.school.ID, emp.SchoolID)
	}
	if emp.PasswordHash == validSignup().Password {
		t.Fatal("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(validSignup().Password)); err != nil {
		t.Fatalf("hash does not verify: %v", err)
	}
}

func TestSignInChecksCredentials(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()

	if _, err := svc.SignUp(ctx, validSignup()); err != nil {
		t.Fatalf("signup: %v", err)
	}

	emp, err := svc.SignIn(ctx, "j.rivera@schools.nyc.gov", "a-long-enough-password")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if emp.Email != "j.rivera@schools.nyc.gov" {
		t.Fatalf("unexpected employee %q", emp.Email)
	}

	if _, err := svc.SignIn(ctx, "j.rivera@schools.nyc.gov", "wrong-password"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials got %v", err)
	}
	if _, err := svc.SignIn(ctx, "nobody@schools.nyc.gov", "a-long-enough-password"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials got %v", err)
	}
}

func TestChangePasswordSwapsHash(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()

	emp, err := svc.SignUp(ctx, validSignup())
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	next := "an-even-longer-password"
	if err := svc.ChangePassword(ctx, emp.ID, "a-long-enough-password", next, next); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := svc.SignIn(ctx, emp.Email, next); err != nil {
		t.Fatalf("sign in with new password: %v", err)
	}
	if _, err := svc.SignIn(ctx, emp.Email, "a-long-enough-password"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("old password still accepted: %v", err)
	}
}

func TestChangePasswordRejectsWrongCurrent(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()

	emp, err := svc.SignUp(ctx, validSignup())
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	next := "an-even-longer-password"
	if err := svc.ChangePassword(ctx, emp.ID, "not-my-password!!", next, next); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials got %v", err)
	}
	if _, err := svc.SignIn(ctx, emp.Email, "a-long-enough-password"); err != nil {
		t.Fatalf("original password no longer works: %v", err)
	}
}

func TestChangePasswordValidatesNewPassword(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()

	emp, err := svc.SignUp(ctx, validSignup())
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	err = svc.ChangePassword(ctx, emp.ID, "a-long-enough-password", "short", "short")
	var verr *services.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error got %v", err)
	}
	if verr.Violations["new"] != "too_short" {
		t.Fatalf("expected too_short, violations: %v", verr.Violations)
	}

	err = svc.ChangePassword(ctx, emp.ID, "a-long-enough-password", "an-even-longer-password", "a-different-confirmation")
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error got %v", err)
	}
	if verr.Violations["confirm"] != "mismatch" {
		t.Fatalf("expected mismatch, violations: %v", verr.Violations)
	}
}

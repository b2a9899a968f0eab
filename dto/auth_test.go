package dto

import "testing"

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Username:        "agus",
		DisplayName:     "Agus Supriatna",
		Email:           "agus@desa.go.id",
		Password:        "rahasia123",
		ConfirmPassword: "rahasia123",
	}
}

func TestRegisterRequestValid(t *testing.T) {
	req := validRegisterRequest()
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestRegisterRequestShortPassword(t *testing.T) {
	req := validRegisterRequest()
	req.Password = "abcde"
	req.ConfirmPassword = "abcde"

	errs := req.Validate()
	if _, ok := errs["password"]; !ok {
		t.Fatalf("expected password error for 5-character password, got %v", errs)
	}
}

func TestRegisterRequestPasswordMismatch(t *testing.T) {
	req := validRegisterRequest()
	req.ConfirmPassword = "berbeda123"

	errs := req.Validate()
	if _, ok := errs["confirm_password"]; !ok {
		t.Fatalf("expected confirm_password error, got %v", errs)
	}
}

func TestRegisterRequestInvalidEmail(t *testing.T) {
	req := validRegisterRequest()
	req.Email = "bukan-email"

	errs := req.Validate()
	if _, ok := errs["email"]; !ok {
		t.Fatalf("expected email error, got %v", errs)
	}
}

func TestPasswordResetSubmissionShortPassword(t *testing.T) {
	sub := PasswordResetSubmission{
		Token:           "tok",
		Password:        "12345",
		ConfirmPassword: "12345",
	}

	errs := sub.Validate()
	if _, ok := errs["password"]; !ok {
		t.Fatalf("expected password error, got %v", errs)
	}
}

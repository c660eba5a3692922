package registration

import (
	"regexp"
	"strings"
)

// RegistrationPayload is the untrusted input for one registration attempt.
// Missing fields decode to empty strings, never nil.
type RegistrationPayload struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// FieldError attributes a single validation failure to one named input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the ordered field errors for one payload.
// Validity is derived from the error list and nowhere else.
type ValidationResult struct {
	Errors []FieldError
}

func (r ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

var (
	emailFormat  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nameCharset  = regexp.MustCompile(`^[A-Za-z \-']+$`)
	hasLowercase = regexp.MustCompile(`[a-z]`)
	hasUppercase = regexp.MustCompile(`[A-Z]`)
	hasDigit     = regexp.MustCompile(`[0-9]`)
	hasSpecial   = regexp.MustCompile(`[@$!%*?&]`)
)

// Validate checks a payload against the registration rule set and accumulates
// every violation in a fresh result. Fields are checked email, name, password;
// a missing field reports only its required error, all other rules for the
// remaining fields still run.
func Validate(p RegistrationPayload) ValidationResult {
	var errs []FieldError
	errs = appendEmailErrors(errs, p.Email)
	errs = appendNameErrors(errs, p.Name)
	errs = appendPasswordErrors(errs, p.Password)
	return ValidationResult{Errors: errs}
}

func appendEmailErrors(errs []FieldError, email string) []FieldError {
	if strings.TrimSpace(email) == "" {
		return append(errs, FieldError{"email", "Email is required"})
	}
	if !emailFormat.MatchString(email) {
		errs = append(errs, FieldError{"email", "Email format is invalid"})
	}
	if len(email) > 255 {
		errs = append(errs, FieldError{"email", "Email must not exceed 255 characters"})
	}
	return errs
}

func appendNameErrors(errs []FieldError, name string) []FieldError {
	if strings.TrimSpace(name) == "" {
		return append(errs, FieldError{"name", "Name is required"})
	}
	if len(name) < 2 {
		errs = append(errs, FieldError{"name", "Name must be at least 2 characters"})
	}
	if len(name) > 100 {
		errs = append(errs, FieldError{"name", "Name must not exceed 100 characters"})
	}
	if !nameCharset.MatchString(name) {
		errs = append(errs, FieldError{"name", "Name contains invalid characters"})
	}
	return errs
}

func appendPasswordErrors(errs []FieldError, password string) []FieldError {
	if strings.TrimSpace(password) == "" {
		return append(errs, FieldError{"password", "Password is required"})
	}
	if len(password) < 8 {
		errs = append(errs, FieldError{"password", "Password must be at least 8 characters"})
	}
	if len(password) > 128 {
		errs = append(errs, FieldError{"password", "Password must not exceed 128 characters"})
	}
	if !hasLowercase.MatchString(password) {
		errs = append(errs, FieldError{"password", "Password must contain a lowercase letter"})
	}
	if !hasUppercase.MatchString(password) {
		errs = append(errs, FieldError{"password", "Password must contain an uppercase letter"})
	}
	if !hasDigit.MatchString(password) {
		errs = append(errs, FieldError{"password", "Password must contain a digit"})
	}
	if !hasSpecial.MatchString(password) {
		errs = append(errs, FieldError{"password", "Password must contain a special character (@$!%*?&)"})
	}
	return errs
}

package validation

import (
	"regexp"
	"strings"

	"github.com/yigit/admissions-crm/internal/pkg/apperrors"
)

// Validation rule patterns and bounds
var (
	EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

	PasswordMinLength = 8
	NameMinLength     = 2
	NameMaxLength     = 100
	PhoneMinDigits    = 10

	GPAMin, GPAMax = 0.0, 4.5
	SATMin, SATMax = 400, 800
	ACTMin, ACTMax = 1, 36
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email    *regexp.Regexp
	NonDigit *regexp.Regexp
}{
	Email:    regexp.MustCompile(EmailPattern),
	NonDigit: regexp.MustCompile(`\D`),
}

// StringValidation checks a single string value
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	value := strings.TrimSpace(v.Value)
	if value == "" {
		return !v.Required
	}
	if v.MinLen > 0 && len(value) < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && len(value) > v.MaxLen {
		return false
	}
	if v.Pattern != nil && !v.Pattern.MatchString(value) {
		return false
	}
	return true
}

// Email validates an email address
func Email(field, email string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.NewValidationError(field, "Email is required")
	}
	if !NewStringValidation(email).WithPattern(CompiledPatterns.Email).Validate() {
		return apperrors.NewValidationError(field, "Please enter a valid email address")
	}
	return nil
}

// Password validates a login password
func Password(password string) error {
	if password == "" {
		return apperrors.NewValidationError("password", "Password is required")
	}
	if len(password) < PasswordMinLength {
		return apperrors.NewValidationError("password", "Password must be at least 8 characters long")
	}
	return nil
}

// Name validates a person name
func Name(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationError(field, "Name is required")
	}
	if !NewStringValidation(name).WithMinLength(NameMinLength).WithMaxLength(NameMaxLength).Validate() {
		return apperrors.NewValidationError(field, "Name must be between 2 and 100 characters long")
	}
	return nil
}

// Phone validates a phone number by its digit count
func Phone(field, phone string) error {
	if phone == "" {
		return apperrors.NewValidationError(field, "Phone number is required")
	}
	if len(CompiledPatterns.NonDigit.ReplaceAllString(phone, "")) < PhoneMinDigits {
		return apperrors.NewValidationError(field, "Please enter a valid phone number")
	}
	return nil
}

// Required rejects blank strings
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.NewValidationError(field, field+" is required")
	}
	return nil
}

// GPA validates a grade point average
func GPA(gpa float64) error {
	if gpa < GPAMin || gpa > GPAMax {
		return apperrors.NewValidationError("gpa", "GPA must be between 0 and 4.5")
	}
	return nil
}

// SATScore validates an optional SAT score
func SATScore(field string, score *int) error {
	if score == nil {
		return nil
	}
	if *score < SATMin || *score > SATMax {
		return apperrors.NewValidationError(field, "SAT section score must be between 400 and 800")
	}
	return nil
}

// ACTScore validates an optional ACT score
func ACTScore(score *int) error {
	if score == nil {
		return nil
	}
	if *score < ACTMin || *score > ACTMax {
		return apperrors.NewValidationError("act", "ACT score must be between 1 and 36")
	}
	return nil
}

// NonNegative rejects negative amounts
func NonNegative(field string, value int) error {
	if value < 0 {
		return apperrors.NewValidationError(field, field+" must not be negative")
	}
	return nil
}

// First returns the first non-nil error
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

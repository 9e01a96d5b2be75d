// Package validation holds the input rules shared by the client services and
// the server: credentials, comments, ratings, usernames and meal slots.
// Rules are expressed as go-playground/validator tags.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// ErrValidationFailure is the sentinel every *Error unwraps to.
var ErrValidationFailure = errors.New("validation failed")

// Limits.
const (
	MinPasswordLength = 6
	MaxUsernameLength = 50
	MaxCommentLength  = 1000
	MaxReviewLength   = 2000
	MinRating         = 1
	MaxRating         = 5
)

// MealTypes lists the accepted meal slots in calendar order.
var MealTypes = []string{"breakfast", "lunch", "dinner", "snack"}

// FieldViolation describes one invalid input field.
type FieldViolation struct {
	Field       string
	Description string
}

// Error reports one or more invalid fields.
type Error struct {
	Violations []FieldViolation
}

func (e *Error) Error() string {
	if len(e.Violations) == 0 {
		return ErrValidationFailure.Error()
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Description)
	}
	return strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error { return ErrValidationFailure }

// NewError builds an *Error with a single violation.
func NewError(field, description string) *Error {
	return &Error{Violations: []FieldViolation{{Field: field, Description: description}}}
}

// Validator wraps a configured *validator.Validate.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator with the custom "mealtype" and "notblank" rules
// registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("mealtype", func(fl validator.FieldLevel) bool {
		return IsMealType(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &Validator{v: v}
}

// Credentials is the sign-up input. Login uses the Email and Password rules
// only (see Login).
type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"min=6"`
	Username string `validate:"notblank,max=50"`
}

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"min=6"`
}

// SignUp validates all sign-up fields.
func (v *Validator) SignUp(c Credentials) error {
	c.Email = strings.TrimSpace(c.Email)
	return v.structErr(v.v.Struct(c))
}

// Login validates e-mail and password.
func (v *Validator) Login(email, password string) error {
	return v.structErr(v.v.Struct(loginInput{Email: strings.TrimSpace(email), Password: password}))
}

// Password checks the minimum length.
func (v *Validator) Password(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return NewError("Password", fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}
	return nil
}

// PasswordChange validates a new password and its confirmation.
func (v *Validator) PasswordChange(current, next, confirm string) error {
	if current == "" {
		return NewError("CurrentPassword", "current password is required")
	}
	if err := v.Password(next); err != nil {
		return err
	}
	if next != confirm {
		return NewError("ConfirmPassword", "passwords do not match")
	}
	return nil
}

// Username trims name and validates it, returning the trimmed value.
func (v *Validator) Username(name string) (string, error) {
	name = strings.TrimSpace(name)
	if err := v.v.Var(name, "required,max=50"); err != nil {
		return "", v.fieldErr("Username", err)
	}
	return name, nil
}

// Comment trims text and validates it, returning the trimmed value.
func (v *Validator) Comment(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", NewError("Text", "comment cannot be empty")
	}
	if utf8.RuneCountInString(text) > MaxCommentLength {
		return "", NewError("Text", fmt.Sprintf("comment must be at most %d characters", MaxCommentLength))
	}
	return text, nil
}

// Rating validates a score in 1..5.
func (v *Validator) Rating(score int) error {
	if err := v.v.Var(score, "min=1,max=5"); err != nil {
		return NewError("Rating", fmt.Sprintf("rating must be between %d and %d", MinRating, MaxRating))
	}
	return nil
}

// Review normalizes an optional review: blank text becomes nil.
func (v *Validator) Review(review *string) (*string, error) {
	if review == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*review)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > MaxReviewLength {
		return nil, NewError("Review", fmt.Sprintf("review must be at most %d characters", MaxReviewLength))
	}
	return &trimmed, nil
}

// MealType validates a meal slot name.
func (v *Validator) MealType(mealType string) error {
	if err := v.v.Var(mealType, "required,mealtype"); err != nil {
		return NewError("MealType", "meal type must be one of "+strings.Join(MealTypes, ", "))
	}
	return nil
}

// IsMealType reports whether s is one of MealTypes.
func IsMealType(s string) bool {
	for _, m := range MealTypes {
		if s == m {
			return true
		}
	}
	return false
}

func (v *Validator) fieldErr(field string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return NewError(field, err.Error())
	}
	return NewError(field, describe(field, verrs[0].Tag(), verrs[0].Param()))
}

func (v *Validator) structErr(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewError("", err.Error())
	}
	out := &Error{}
	for _, fe := range verrs {
		out.Violations = append(out.Violations, FieldViolation{
			Field:       fe.Field(),
			Description: describe(fe.Field(), fe.Tag(), fe.Param()),
		})
	}
	return out
}

func describe(field, tag, param string) string {
	name := strings.ToLower(field)
	switch tag {
	case "required", "notblank":
		return name + " is required"
	case "email":
		return "invalid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, param)
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

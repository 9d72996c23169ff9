package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput is the only failure callers see; the failing field is not
// part of the external contract.
var ErrInvalidInput = errors.New("invalid input")

var alnumPattern = regexp.MustCompile(`[a-zA-Z0-9]`)

type RegisterPayload struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email,allowedtld"`
	Password string `json:"password" validate:"required,alphanum,min=4"`
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email,allowedtld"`
	Password string `json:"password" validate:"required,alphanum,min=4"`
}

type TransactionPayload struct {
	UserID      int64   `json:"idUser"`
	Description string  `json:"description" validate:"required,hasalnum"`
	Value       float64 `json:"value" validate:"required,min=1"`
	Date        string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type Validator struct {
	validate *validator.Validate
	tlds     map[string]struct{}
}

// New builds a validator whose email rule only accepts addresses with at
// least two domain segments and a top-level domain from allowedTLDs
// (given without the leading dot, e.g. "com", "net").
func New(allowedTLDs []string) (*Validator, error) {
	v := &Validator{
		validate: validator.New(),
		tlds:     make(map[string]struct{}, len(allowedTLDs)),
	}
	for _, tld := range allowedTLDs {
		tld = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tld), "."))
		if tld == "" {
			continue
		}
		v.tlds[tld] = struct{}{}
	}

	if err := v.validate.RegisterValidation("allowedtld", v.validateTLD); err != nil {
		return nil, fmt.Errorf("failed to register tld rule: %w", err)
	}
	if err := v.validate.RegisterValidation("hasalnum", validateHasAlnum); err != nil {
		return nil, fmt.Errorf("failed to register alnum rule: %w", err)
	}

	return v, nil
}

// Struct checks the payload against its schema tags. Any rule failure
// collapses to ErrInvalidInput; the underlying detail stays wrapped for logs.
func (v *Validator) Struct(payload interface{}) error {
	if err := v.validate.Struct(payload); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func (v *Validator) validateTLD(fl validator.FieldLevel) bool {
	email := fl.Field().String()

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	labels := strings.Split(email[at+1:], ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" {
			return false
		}
	}

	_, ok := v.tlds[strings.ToLower(labels[len(labels)-1])]
	return ok
}

func validateHasAlnum(fl validator.FieldLevel) bool {
	return alnumPattern.MatchString(fl.Field().String())
}

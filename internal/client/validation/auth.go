package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// validate is shared; a validator.Validate instance caches struct metadata
// and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// RegisterForm mirrors the registration rules: a syntactically valid email,
// a password of at least 8 characters, entered twice.
type RegisterForm struct {
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=8"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// LoginForm only requires a well-formed email and a non-empty password; the
// server decides whether the pair is correct.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

var (
	ErrEmailInvalid      = errors.New("adresse email invalide")
	ErrPasswordTooWeak   = errors.New("le mot de passe doit contenir au moins 8 caracteres")
	ErrPasswordsMismatch = errors.New("les mots de passe ne correspondent pas")
	ErrPasswordRequired  = errors.New("le mot de passe est requis")
)

// CheckRegisterForm returns the first violated rule as a user-facing error.
func CheckRegisterForm(f RegisterForm) error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	switch verrs[0].Field() {
	case "Email":
		return ErrEmailInvalid
	case "Password":
		return ErrPasswordTooWeak
	default:
		return ErrPasswordsMismatch
	}
}

// CheckLoginForm returns the first violated rule as a user-facing error.
func CheckLoginForm(f LoginForm) error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	if verrs[0].Field() == "Email" {
		return ErrEmailInvalid
	}
	return ErrPasswordRequired
}

package auth

import (
	"unicode"

	"sentinel-lab/errors"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

type RegisterRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=12,max=72"`
}

func ValidateRegister(req RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}

	if !isPasswordComplex(req.Password) {
		return errors.ErrInvalidPassword
	}
	return nil
}

// RequireModerator validates a token string and checks it carries the
// moderator role. It returns the claims on success.
func RequireModerator(tokenString string) (*ModeratorClaims, error) {
	claims, err := ValidateToken(tokenString)
	if err != nil {
		return nil, errors.ErrInvalidToken
	}
	if !lo.Contains(claims.Roles, "moderator") && !lo.Contains(claims.Roles, "admin") {
		return nil, errors.ErrModeratorRequired
	}
	return claims, nil
}

func isPasswordComplex(s string) bool {
	var (
		hasUpper   = false
		hasLower   = false
		hasNumber  = false
		hasSpecial = false
	)
	for _, char := range s {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasNumber && hasSpecial
}

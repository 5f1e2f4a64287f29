package usecase

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8
	// maxPasswordBytes はbcryptが受け付ける最大バイト数です。
	maxPasswordBytes = 72
)

var validate = validator.New()

// validateCredentials checks the email shape and the password length.
// The minimum counts characters; the maximum counts bytes, as bcrypt does.
// Rules run in order and the first failure is returned on its own.
func validateCredentials(email, password string) []UserError {
	if err := validate.Var(email, "required,email"); err != nil {
		return []UserError{{Message: MsgInvalidEmail}}
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return []UserError{{Message: MsgPasswordTooShort}}
	}
	if len(password) > maxPasswordBytes {
		return []UserError{{Message: MsgPasswordTooLong}}
	}
	return nil
}

// validateSignup runs validateCredentials, then requires a non-blank name and bio.
func validateSignup(in SignupInput) []UserError {
	if errs := validateCredentials(in.Email, in.Password); len(errs) > 0 {
		return errs
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Bio) == "" {
		return []UserError{{Message: MsgInvalidInput}}
	}
	return nil
}

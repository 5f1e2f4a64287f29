package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		password string
		expected []UserError
	}{
		{"valid", "user@example.com", "12345678", nil},
		{"plus addressing", "user+tag@example.co.jp", "password123", nil},
		{"invalid email", "user.example.com", "password123", []UserError{{Message: MsgInvalidEmail}}},
		{"short password", "user@example.com", "1234567", []UserError{{Message: MsgPasswordTooShort}}},
		{"both invalid reports email only", "nope", "x", []UserError{{Message: MsgInvalidEmail}}},
		{"72 bytes", "user@example.com", strings.Repeat("a", 72), nil},
		{"73 bytes", "user@example.com", strings.Repeat("a", 73), []UserError{{Message: MsgPasswordTooLong}}},
		{"36 multibyte runes is 72 bytes", "user@example.com", strings.Repeat("é", 36), nil},
		{"40 multibyte runes is 80 bytes", "user@example.com", strings.Repeat("é", 40), []UserError{{Message: MsgPasswordTooLong}}},
		{"invalid email wins over long password", "nope", strings.Repeat("a", 73), []UserError{{Message: MsgInvalidEmail}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, validateCredentials(tt.email, tt.password))
		})
	}
}

func TestValidateSignup_RequiresNameAndBio(t *testing.T) {
	t.Parallel()

	base := SignupInput{Email: "user@example.com", Password: "password123", Name: "N", Bio: "B"}
	assert.Nil(t, validateSignup(base))

	noName := base
	noName.Name = ""
	assert.Equal(t, []UserError{{Message: MsgInvalidInput}}, validateSignup(noName))

	noBio := base
	noBio.Bio = "\t\n"
	assert.Equal(t, []UserError{{Message: MsgInvalidInput}}, validateSignup(noBio))
}

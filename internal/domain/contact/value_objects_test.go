//go:build unit

package contact_test

import (
	"testing"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/contact"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := map[string]string{
		"+7 (916) 123-45-67": "+79161234567",
		"8 916 123 45 67":    "+79161234567",
		"89161234567":        "+79161234567",
		"  +380501234567 ":   "+380501234567",
		"8123":               "8123",
	}
	for in, expected := range tests {
		assert.Equal(t, expected, contact.NormalizePhone(in), in)
	}
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, contact.IsValidPhone("+7 916 123-45-67"))
	assert.False(t, contact.IsValidPhone(""))
	assert.False(t, contact.IsValidPhone("+0123456789"))
	assert.False(t, contact.IsValidPhone("12345"))
}

func TestEmail(t *testing.T) {
	e, err := contact.NewEmail("")
	assert.NoError(t, err)
	assert.True(t, e.IsEmpty())

	e, err = contact.NewEmail(" Anna@Mail.RU ")
	assert.NoError(t, err)
	assert.Equal(t, "anna@mail.ru", e.String())

	_, err = contact.NewEmail("anna@mail")
	assert.ErrorIs(t, err, contact.ErrInvalidEmail)
}

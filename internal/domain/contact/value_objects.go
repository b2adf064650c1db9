package contact

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrNameTooLong  = errors.New("name exceeds maximum length")
	ErrEmptyPhone   = errors.New("phone cannot be empty")
	ErrInvalidPhone = errors.New("invalid phone number")
	ErrInvalidEmail = errors.New("invalid email format")
)

const MaxNameLength = 100

var (
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneNoise = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	if utf8.RuneCountInString(s) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

// Phone is stored in its normalized form: digits with an optional leading '+'.
type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	normalized := NormalizePhone(s)
	if normalized == "" {
		return Phone{}, ErrEmptyPhone
	}
	if !phoneRegex.MatchString(normalized) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: normalized}, nil
}

func (p Phone) String() string { return p.value }

// NormalizePhone strips formatting characters and rewrites the Russian trunk prefix 8 to +7.
func NormalizePhone(s string) string {
	cleaned := phoneNoise.Replace(strings.TrimSpace(s))
	if len(cleaned) == 11 && strings.HasPrefix(cleaned, "8") {
		cleaned = "+7" + cleaned[1:]
	}
	return cleaned
}

func IsValidPhone(s string) bool {
	_, err := NewPhone(s)
	return err == nil
}

// Email is optional on bookings and clients; the zero value means "not given".
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Email{}, nil
	}
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(s)}, nil
}

func (e Email) String() string { return e.value }
func (e Email) IsEmpty() bool  { return e.value == "" }

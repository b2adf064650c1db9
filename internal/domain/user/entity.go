package user

import (
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/contact"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	name         contact.Name
	phone        string
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
}

// NewClientUser registers a self-signed-up account. Staff accounts are created by admins.
func NewClientUser(email Email, passwordHash, name, phone string, now time.Time) (*User, error) {
	return NewUser(email, passwordHash, RoleClient, name, phone, now)
}

func NewUser(email Email, passwordHash string, role Role, name, phone string, now time.Time) (*User, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	n, err := contact.NewName(name)
	if err != nil {
		return nil, err
	}
	var normalized string
	if phone != "" {
		p, err := contact.NewPhone(phone)
		if err != nil {
			return nil, err
		}
		normalized = p.String()
	}
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		name:         n,
		phone:        normalized,
		isActive:     true,
		createdAt:    now,
	}, nil
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) Name() contact.Name    { return u.name }
func (u *User) Phone() string         { return u.phone }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }

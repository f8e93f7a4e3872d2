package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticated identity. A Profile row is created alongside it
// at sign-up and shares its id.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	createdAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// Profile is the user-editable account record. Only the full name is mutable
// from the application; role changes happen through admin tooling.
type Profile struct {
	id       uuid.UUID
	fullName FullName
	email    Email
	role     Role
}

func NewProfile(id uuid.UUID, fullName FullName, email Email, role Role) *Profile {
	return &Profile{
		id:       id,
		fullName: fullName,
		email:    email,
		role:     role,
	}
}

func (p *Profile) ID() uuid.UUID      { return p.id }
func (p *Profile) FullName() FullName { return p.fullName }
func (p *Profile) Email() Email       { return p.email }
func (p *Profile) Role() Role         { return p.role }

func (p *Profile) Rename(fullName FullName) {
	p.fullName = fullName
}

package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the aggregate root for the accounts domain.
// Password always holds a bcrypt digest once the user has been
// constructed; plaintext never reaches this type.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	Role      Role
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NormalizeEmail lowercases and trims an email address. Uniqueness and
// authentication lookups are case-insensitive as a matter of policy;
// every email crossing the domain boundary goes through here.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUser constructs a freshly registered user. The ID and CreatedAt are
// assigned here, exactly once; UpdatedAt stays nil until the first
// mutation. passwordDigest must already be hashed.
func NewUser(name, email, passwordDigest string, role Role) *User {
	if role == "" {
		role = RoleUser
	}
	return &User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     NormalizeEmail(email),
		Password:  passwordDigest,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
}

// Rehydrate rebuilds a user from persisted state without regenerating
// identity or timestamps.
func Rehydrate(id, name, email, passwordDigest string, role Role, createdAt time.Time, updatedAt *time.Time) *User {
	return &User{
		ID:        id,
		Name:      name,
		Email:     email,
		Password:  passwordDigest,
		Role:      role,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Touch returns a copy of the user with UpdatedAt refreshed. The
// receiver is left untouched; mutations always produce a new value.
func (u User) Touch() User {
	now := time.Now().UTC()
	u.UpdatedAt = &now
	return u
}

package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u := NewUser("John Doe", "John@X.com", "$2a$10$digest", RoleAdmin)

	_, err := uuid.Parse(u.ID)
	require.NoError(t, err, "id must be a generated uuid")

	assert.Equal(t, "John Doe", u.Name)
	assert.Equal(t, "john@x.com", u.Email, "email is normalized at construction")
	assert.Equal(t, RoleAdmin, u.Role)
	assert.False(t, u.CreatedAt.IsZero())
	assert.Nil(t, u.UpdatedAt, "updatedAt stays nil until first mutation")
}

func TestNewUserDefaultRole(t *testing.T) {
	u := NewUser("John Doe", "john@x.com", "digest", "")
	assert.Equal(t, RoleUser, u.Role)
}

func TestNewUserUniqueIDs(t *testing.T) {
	a := NewUser("a", "a@x.com", "d", RoleUser)
	b := NewUser("b", "b@x.com", "d", RoleUser)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestTouchReturnsCopy(t *testing.T) {
	u := NewUser("John Doe", "john@x.com", "digest", RoleUser)

	touched := u.Touch()

	require.NotNil(t, touched.UpdatedAt)
	assert.Nil(t, u.UpdatedAt, "receiver must stay untouched")
	assert.Equal(t, u.ID, touched.ID)
	assert.Equal(t, u.CreatedAt, touched.CreatedAt)
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"John@X.com", "john@x.com"},
		{"  john@x.com  ", "john@x.com"},
		{"JOHN@X.COM", "john@x.com"},
		{"john@x.com", "john@x.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEmail(tt.in))
	}
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("ADMIN")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	r, err = ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, r)

	_, err = ParseRole("ROOT")
	assert.Error(t, err)
}

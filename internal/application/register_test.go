package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/adrianhuber/accounts-api/internal/domain/entity"
	"github.com/adrianhuber/accounts-api/internal/domain/repository"
	"github.com/adrianhuber/accounts-api/internal/infrastructure/memory"
	"github.com/adrianhuber/accounts-api/pkg/helpers"
)

// countingHasher wraps the real hasher to observe hashing work.
type countingHasher struct {
	inner Hasher
	calls int
}

func (h *countingHasher) Hash(plain string) (string, error) {
	h.calls++
	return h.inner.Hash(plain)
}

func (h *countingHasher) Compare(plain, digest string) bool {
	return h.inner.Compare(plain, digest)
}

// brokenRepo fails every operation with an infrastructure error.
type brokenRepo struct{}

var errStoreDown = errors.New("store unavailable")

func (brokenRepo) Create(context.Context, *entity.User) error { return errStoreDown }
func (brokenRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, errStoreDown
}
func (brokenRepo) FindByID(context.Context, string) (*entity.User, error) {
	return nil, errStoreDown
}

// racingRepo reports the email as free on lookup but conflicts on
// create, imitating a concurrent registration winning the race.
type racingRepo struct{ memory.UserRepository }

func (r *racingRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, repository.ErrNotFound
}

func (r *racingRepo) Create(context.Context, *entity.User) error {
	return repository.ErrConflict
}

func newHasher() Hasher { return helpers.NewBcryptHasher(bcrypt.MinCost) }

func TestRegisterSuccess(t *testing.T) {
	repo := memory.NewUserRepository()
	hasher := newHasher()
	uc := NewRegisterUser(repo, hasher, nil)

	result, err := uc.Execute(context.Background(), RegisterInput{
		Name:     "John Doe",
		Email:    "john@x.com",
		Password: "123456",
	})
	require.NoError(t, err)
	require.True(t, result.IsRight())

	user := result.Right().User
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, entity.RoleUser, user.Role, "role defaults to USER")

	stored, err := repo.FindByEmail(context.Background(), "john@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", stored.Password, "plaintext must never be persisted")
	assert.True(t, hasher.Compare("123456", stored.Password))
	assert.Equal(t, 1, repo.Count())
}

func TestRegisterExplicitRole(t *testing.T) {
	repo := memory.NewUserRepository()
	uc := NewRegisterUser(repo, newHasher(), nil)

	result, err := uc.Execute(context.Background(), RegisterInput{
		Name:     "Root",
		Email:    "admin@x.com",
		Password: "123456",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	require.True(t, result.IsRight())
	assert.Equal(t, entity.RoleAdmin, result.Right().User.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := memory.NewUserRepository()
	hasher := &countingHasher{inner: newHasher()}
	uc := NewRegisterUser(repo, hasher, nil)

	in := RegisterInput{Name: "John Doe", Email: "john@x.com", Password: "123456"}

	first, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	require.True(t, first.IsRight())
	require.Equal(t, 1, hasher.calls)

	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err, "duplicate registration is a domain outcome, not a fault")
	require.True(t, second.IsLeft())
	assert.Equal(t, "john@x.com", second.Left().Email)
	assert.Equal(t, 1, repo.Count(), "no additional store write")
	assert.Equal(t, 1, hasher.calls, "fail fast before hashing")
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	repo := memory.NewUserRepository()
	uc := NewRegisterUser(repo, newHasher(), nil)

	first, err := uc.Execute(context.Background(), RegisterInput{Name: "John", Email: "john@x.com", Password: "123456"})
	require.NoError(t, err)
	require.True(t, first.IsRight())

	second, err := uc.Execute(context.Background(), RegisterInput{Name: "John", Email: "John@X.com", Password: "123456"})
	require.NoError(t, err)
	assert.True(t, second.IsLeft(), "email uniqueness is case-insensitive")
}

func TestRegisterConflictRace(t *testing.T) {
	uc := NewRegisterUser(&racingRepo{}, newHasher(), nil)

	result, err := uc.Execute(context.Background(), RegisterInput{Name: "John", Email: "john@x.com", Password: "123456"})
	require.NoError(t, err, "a store-level conflict after the check maps to the domain error, never a crash")
	require.True(t, result.IsLeft())
	assert.Equal(t, "john@x.com", result.Left().Email)
}

func TestRegisterStoreFailure(t *testing.T) {
	uc := NewRegisterUser(brokenRepo{}, newHasher(), nil)

	_, err := uc.Execute(context.Background(), RegisterInput{Name: "John", Email: "john@x.com", Password: "123456"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)
}

package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrianhuber/accounts-api/internal/infrastructure/memory"
	"github.com/adrianhuber/accounts-api/pkg/helpers"
)

func registeredFixture(t *testing.T) (*memory.UserRepository, *AuthenticateUser, *helpers.JWTManager) {
	t.Helper()

	repo := memory.NewUserRepository()
	hasher := newHasher()
	issuer := helpers.NewJWTManager("test-secret", time.Hour)

	register := NewRegisterUser(repo, hasher, nil)
	result, err := register.Execute(context.Background(), RegisterInput{
		Name:     "John Doe",
		Email:    "john@x.com",
		Password: "123456",
	})
	require.NoError(t, err)
	require.True(t, result.IsRight())

	return repo, NewAuthenticateUser(repo, hasher, issuer, nil), issuer
}

func TestAuthenticateSuccess(t *testing.T) {
	repo, uc, issuer := registeredFixture(t)

	result, err := uc.Execute(context.Background(), AuthenticateInput{Email: "john@x.com", Password: "123456"})
	require.NoError(t, err)
	require.True(t, result.IsRight())

	token := result.Right().AccessToken
	require.NotEmpty(t, token)

	// The token must verify under the same key and assert the user id.
	claims, err := issuer.Parse(token)
	require.NoError(t, err)

	user, err := repo.FindByEmail(context.Background(), "john@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
}

func TestAuthenticateEmailCaseInsensitive(t *testing.T) {
	_, uc, _ := registeredFixture(t)

	result, err := uc.Execute(context.Background(), AuthenticateInput{Email: "John@X.com", Password: "123456"})
	require.NoError(t, err)
	assert.True(t, result.IsRight())
}

func TestAuthenticateWrongPassword(t *testing.T) {
	_, uc, _ := registeredFixture(t)

	result, err := uc.Execute(context.Background(), AuthenticateInput{Email: "john@x.com", Password: "wrong"})
	require.NoError(t, err)
	require.True(t, result.IsLeft())
	assert.EqualError(t, result.Left(), "invalid credentials")
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	_, uc, _ := registeredFixture(t)

	result, err := uc.Execute(context.Background(), AuthenticateInput{Email: "nobody@x.com", Password: "123456"})
	require.NoError(t, err)
	require.True(t, result.IsLeft())
	assert.EqualError(t, result.Left(), "invalid credentials")
}

func TestAuthenticateSameErrorForBothCauses(t *testing.T) {
	_, uc, _ := registeredFixture(t)

	wrongPassword, err := uc.Execute(context.Background(), AuthenticateInput{Email: "john@x.com", Password: "wrong"})
	require.NoError(t, err)
	unknownEmail, err := uc.Execute(context.Background(), AuthenticateInput{Email: "nobody@x.com", Password: "123456"})
	require.NoError(t, err)

	require.True(t, wrongPassword.IsLeft())
	require.True(t, unknownEmail.IsLeft())
	assert.Equal(t, wrongPassword.Left().Error(), unknownEmail.Left().Error(),
		"error message must not reveal whether the account exists")
}

func TestAuthenticateStoreFailure(t *testing.T) {
	issuer := helpers.NewJWTManager("test-secret", time.Hour)
	uc := NewAuthenticateUser(brokenRepo{}, newHasher(), issuer, nil)

	_, err := uc.Execute(context.Background(), AuthenticateInput{Email: "john@x.com", Password: "123456"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)
}

func TestAuthenticateDoesNotWrite(t *testing.T) {
	repo, uc, _ := registeredFixture(t)

	_, err := uc.Execute(context.Background(), AuthenticateInput{Email: "john@x.com", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.Count())

	u, err := repo.FindByEmail(context.Background(), "john@x.com")
	require.NoError(t, err)
	assert.Nil(t, u.UpdatedAt, "authentication never mutates the user")
}

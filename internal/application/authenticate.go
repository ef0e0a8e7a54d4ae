package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/adrianhuber/accounts-api/internal/domain/entity"
	"github.com/adrianhuber/accounts-api/internal/domain/repository"
	"github.com/adrianhuber/accounts-api/pkg/either"
)

// AuthenticateUser verifies credentials and issues an access token
// bound to the user's identity. Read-only; nothing is persisted.
type AuthenticateUser struct {
	Repo   repository.UserRepository
	Hasher Hasher
	Issuer TokenIssuer
	Logger *logrus.Logger
}

func NewAuthenticateUser(repo repository.UserRepository, hasher Hasher, issuer TokenIssuer, logger *logrus.Logger) *AuthenticateUser {
	return &AuthenticateUser{Repo: repo, Hasher: hasher, Issuer: issuer, Logger: logger}
}

type AuthenticateInput struct {
	Email    string
	Password string
}

type AuthenticateOutput struct {
	AccessToken string
}

type AuthenticateResult = either.Either[*InvalidCredentialsError, AuthenticateOutput]

func invalidCredentials() AuthenticateResult {
	return either.NewLeft[*InvalidCredentialsError, AuthenticateOutput](&InvalidCredentialsError{})
}

func (uc *AuthenticateUser) Execute(ctx context.Context, in AuthenticateInput) (AuthenticateResult, error) {
	user, err := uc.Repo.FindByEmail(ctx, entity.NormalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Same outcome as a wrong password; the caller must not be
			// able to tell whether the account exists.
			return invalidCredentials(), nil
		}
		return AuthenticateResult{}, fmt.Errorf("authenticate: lookup by email: %w", err)
	}

	if !uc.Hasher.Compare(in.Password, user.Password) {
		return invalidCredentials(), nil
	}

	token, err := uc.Issuer.Issue(user.ID)
	if err != nil {
		return AuthenticateResult{}, fmt.Errorf("authenticate: issue token: %w", err)
	}

	if uc.Logger != nil {
		uc.Logger.WithField("user_id", user.ID).Info("user authenticated")
	}
	return either.NewRight[*InvalidCredentialsError](AuthenticateOutput{AccessToken: token}), nil
}

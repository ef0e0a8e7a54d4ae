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

// RegisterUser creates a new account: uniqueness check, password
// hashing, persistence. Duplicate registration is a domain outcome
// (left branch); store or hasher faults travel on the error return.
type RegisterUser struct {
	Repo   repository.UserRepository
	Hasher Hasher
	Logger *logrus.Logger
}

func NewRegisterUser(repo repository.UserRepository, hasher Hasher, logger *logrus.Logger) *RegisterUser {
	return &RegisterUser{Repo: repo, Hasher: hasher, Logger: logger}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role // defaults to RoleUser when empty
}

type RegisterOutput struct {
	User *entity.User
}

type RegisterResult = either.Either[*AlreadyExistsError, RegisterOutput]

func (uc *RegisterUser) Execute(ctx context.Context, in RegisterInput) (RegisterResult, error) {
	email := entity.NormalizeEmail(in.Email)

	// Fail fast on a taken email before paying for a hash.
	existing, err := uc.Repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return RegisterResult{}, fmt.Errorf("register: lookup by email: %w", err)
	}
	if existing != nil {
		return either.NewLeft[*AlreadyExistsError, RegisterOutput](&AlreadyExistsError{Email: email}), nil
	}

	digest, err := uc.Hasher.Hash(in.Password)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("register: hash password: %w", err)
	}

	user := entity.NewUser(in.Name, email, digest, in.Role)

	if err := uc.Repo.Create(ctx, user); err != nil {
		// A concurrent registration can slip past the lookup; the
		// unique index reports it as a conflict, which is still the
		// same domain outcome.
		if errors.Is(err, repository.ErrConflict) {
			return either.NewLeft[*AlreadyExistsError, RegisterOutput](&AlreadyExistsError{Email: email}), nil
		}
		return RegisterResult{}, fmt.Errorf("register: create user: %w", err)
	}

	if uc.Logger != nil {
		uc.Logger.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("user registered")
	}
	return either.NewRight[*AlreadyExistsError](RegisterOutput{User: user}), nil
}

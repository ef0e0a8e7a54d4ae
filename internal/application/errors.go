package application

import "fmt"

// invalidCredentialsMessage is deliberately shared by the
// unknown-email and wrong-password branches so responses cannot be
// used to enumerate accounts.
const invalidCredentialsMessage = "invalid credentials"

// AlreadyExistsError is the domain failure for a duplicate registration.
type AlreadyExistsError struct {
	Email string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("user with email %q already exists", e.Email)
}

// InvalidCredentialsError is the domain failure for a rejected
// authentication attempt, whatever the cause.
type InvalidCredentialsError struct{}

func (e *InvalidCredentialsError) Error() string {
	return invalidCredentialsMessage
}

package auth

import (
	"context"
	"errors"

	"github.com/iliyamo/vehicle-registry/internal/model"
	"github.com/iliyamo/vehicle-registry/internal/repository"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password so
// a caller cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialStore is the slice of the admin repository the authenticator
// needs. Lookup is by exact, case-sensitive email.
type CredentialStore interface {
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
}

// Authenticator validates login credentials against the credential store.
// It performs no token work; minting is the caller's second step.
type Authenticator struct {
	store CredentialStore
}

func NewAuthenticator(store CredentialStore) *Authenticator {
	return &Authenticator{store: store}
}

// Login returns the matching admin when the password verifies against the
// stored bcrypt hash, and ErrInvalidCredentials otherwise. Absence of the
// account is not an error distinct from a bad password.
func (a *Authenticator) Login(ctx context.Context, email, password string) (*model.Admin, error) {
	adm, err := a.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !VerifyPassword(adm.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return adm, nil
}

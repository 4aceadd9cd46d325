package ports

import "github.com/google/uuid"

// CredentialService hashes and verifies passwords. The digest format is
// opaque to callers.
type CredentialService interface {
	Hash(password string) (string, error)
	Compare(password, digest string) bool
}

// TokenService issues and verifies bearer tokens carrying a user identifier
// and an expiry.
type TokenService interface {
	Generate(userID uuid.UUID) (string, error)
	// Verify returns domain.ErrInvalidToken for malformed, forged or
	// expired tokens.
	Verify(token string) (uuid.UUID, error)
}

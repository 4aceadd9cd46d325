package services

import (
	"github.com/logbook/api/internal/core/ports"
	"golang.org/x/crypto/bcrypt"
)

type bcryptCredentialService struct {
	cost int
}

// NewCredentialService returns a bcrypt-backed credential service. A cost
// of 0 falls back to bcrypt.DefaultCost.
func NewCredentialService(cost int) ports.CredentialService {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &bcryptCredentialService{cost: cost}
}

func (s *bcryptCredentialService) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (s *bcryptCredentialService) Compare(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

package secret

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var _ Hasher = (*bcryptHasher)(nil)

type bcryptHasher struct {
	cost int
}

// NewBcrypt creates a bcrypt-based Hasher.
// Cost must be between bcrypt.MinCost and bcrypt.MaxCost; zero picks the default.
func NewBcrypt(cost int) (Hasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("secret: bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &bcryptHasher{cost: cost}, nil
}

func (h *bcryptHasher) Hash(_ context.Context, plaintext string) (string, error) {
	if plaintext == "" {
		return "", errors.New("secret: plaintext must not be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("secret: bcrypt hashing failed: %w", err)
	}
	return string(hashed), nil
}

func (h *bcryptHasher) Compare(_ context.Context, hashed, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return fmt.Errorf("secret: bcrypt comparison failed: %w", err)
	}
}

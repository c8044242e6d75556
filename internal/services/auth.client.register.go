package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/joshuarp/idgen-api/internal/domain"
	sharedsecret "github.com/joshuarp/idgen-api/internal/shared/secret"
)

const clientSecretBytes = 32

type APIClientWriter interface {
	CreateAPIClient(ctx context.Context, client domain.APIClient) (domain.APIClient, error)
}

// RegisteredClient holds the only copy of the plaintext secret.
type RegisteredClient struct {
	ClientID     string
	ClientSecret string
	Scopes       []string
}

type ClientRegistrationService struct {
	repository APIClientWriter
	hasher     sharedsecret.Hasher
}

func NewClientRegistrationService(repository APIClientWriter, hasher sharedsecret.Hasher) *ClientRegistrationService {
	return &ClientRegistrationService{repository: repository, hasher: hasher}
}

func (s *ClientRegistrationService) Register(ctx context.Context, clientID string, scopes []string) (RegisteredClient, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return RegisteredClient{}, fmt.Errorf("service: client id is required")
	}
	if len(scopes) == 0 {
		return RegisteredClient{}, fmt.Errorf("service: at least one scope is required")
	}

	raw := make([]byte, clientSecretBytes)
	if _, err := rand.Read(raw); err != nil {
		return RegisteredClient{}, fmt.Errorf("service: failed to generate secret: %w", err)
	}
	plaintext := base64.RawURLEncoding.EncodeToString(raw)

	hashed, err := s.hasher.Hash(ctx, plaintext)
	if err != nil {
		return RegisteredClient{}, fmt.Errorf("service: failed to hash secret: %w", err)
	}

	client, err := s.repository.CreateAPIClient(ctx, domain.APIClient{
		ClientID:   clientID,
		SecretHash: hashed,
		Scopes:     scopes,
		Status:     domain.APIClientStatusActive,
	})
	if err != nil {
		return RegisteredClient{}, err
	}

	return RegisteredClient{
		ClientID:     client.ClientID,
		ClientSecret: plaintext,
		Scopes:       client.Scopes,
	}, nil
}

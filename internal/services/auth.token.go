package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joshuarp/idgen-api/internal/domain"
	"github.com/joshuarp/idgen-api/internal/domain/vo"
	sharedjwt "github.com/joshuarp/idgen-api/internal/shared/jwt"
	sharedsecret "github.com/joshuarp/idgen-api/internal/shared/secret"
	shareduid "github.com/joshuarp/idgen-api/internal/shared/uid"
)

type APIClientRepository interface {
	GetAPIClientByClientID(ctx context.Context, clientID string) (domain.APIClient, error)
	TouchLastToken(ctx context.Context, id string) error
}

type AuthTokenService struct {
	repository   APIClientRepository
	hasher       sharedsecret.Hasher
	tokenManager sharedjwt.TokenManager
	tokenIDs     shareduid.UIDGenerator
	logger       *slog.Logger
}

func NewAuthTokenService(
	repository APIClientRepository,
	hasher sharedsecret.Hasher,
	tokenManager sharedjwt.TokenManager,
	tokenIDs shareduid.UIDGenerator,
	logger *slog.Logger,
) *AuthTokenService {
	return &AuthTokenService{
		repository:   repository,
		hasher:       hasher,
		tokenManager: tokenManager,
		tokenIDs:     tokenIDs,
		logger:       logger,
	}
}

// IssueToken exchanges client credentials for a bearer token carrying the
// client's scopes.
func (s *AuthTokenService) IssueToken(ctx context.Context, clientID, clientSecret string) (vo.AuthToken, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" || strings.TrimSpace(clientSecret) == "" {
		return vo.AuthToken{}, vo.ErrInvalidCredentials
	}

	client, err := s.repository.GetAPIClientByClientID(ctx, clientID)
	if err != nil {
		return vo.AuthToken{}, err
	}

	if err := s.hasher.Compare(ctx, client.SecretHash, clientSecret); err != nil {
		if !errors.Is(err, sharedsecret.ErrMismatch) {
			s.logger.Warn("stored secret hash is unusable", "client_id", clientID, "error", err)
		}
		return vo.AuthToken{}, vo.ErrInvalidCredentials
	}

	tokenID, err := s.tokenIDs.Generate(ctx)
	if err != nil {
		return vo.AuthToken{}, fmt.Errorf("service: failed to generate token id: %w", err)
	}

	token, err := s.tokenManager.Sign(ctx, sharedjwt.Claims{
		Subject: client.ClientID,
		ID:      tokenID,
		Scopes:  client.Scopes,
	})
	if err != nil {
		return vo.AuthToken{}, fmt.Errorf("service: failed to issue token: %w", err)
	}

	if err := s.repository.TouchLastToken(ctx, client.ID); err != nil {
		s.logger.Warn("failed to record token issuance", "client_id", clientID, "error", err)
	}

	return vo.AuthToken{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenManager.TTL().Seconds()),
		Scope:       client.Scopes,
	}, nil
}

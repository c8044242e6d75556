package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/joshuarp/idgen-api/internal/domain"
	"github.com/joshuarp/idgen-api/internal/domain/vo"
)

const uniqueViolation = "23505"

// ErrClientExists is returned by CreateAPIClient for a duplicate client_id.
var ErrClientExists = errors.New("repository: api client already exists")

type APIClientRepository struct {
	db *sqlx.DB
}

type apiClientRow struct {
	ID         string `db:"id"`
	ClientID   string `db:"client_id"`
	SecretHash string `db:"secret_hash"`
	Scopes     string `db:"scopes"`
	Status     string `db:"status"`
}

func NewAPIClientRepository(db *sqlx.DB) *APIClientRepository {
	return &APIClientRepository{db: db}
}

// GetAPIClientByClientID returns an active client. Unknown and disabled
// clients both surface as vo.ErrInvalidCredentials.
func (r *APIClientRepository) GetAPIClientByClientID(ctx context.Context, clientID string) (domain.APIClient, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return domain.APIClient{}, vo.ErrInvalidCredentials
	}

	const query = `
		SELECT id::text AS id, client_id, secret_hash, scopes, status
		FROM api_clients
		WHERE client_id = $1
		LIMIT 1
	`

	var row apiClientRow
	if err := r.db.GetContext(ctx, &row, query, clientID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.APIClient{}, vo.ErrInvalidCredentials
		}
		return domain.APIClient{}, fmt.Errorf("repository: get api client failed: %w", err)
	}

	client := domain.APIClient{
		ID:         row.ID,
		ClientID:   row.ClientID,
		SecretHash: row.SecretHash,
		Scopes:     strings.Fields(row.Scopes),
		Status:     row.Status,
	}
	if !client.Active() {
		return domain.APIClient{}, vo.ErrInvalidCredentials
	}
	return client, nil
}

// TouchLastToken records when the client last obtained a token.
func (r *APIClientRepository) TouchLastToken(ctx context.Context, id string) error {
	const query = `UPDATE api_clients SET last_token_at = now(), updated_at = now() WHERE id = $1::uuid`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("repository: touch api client failed: %w", err)
	}
	return nil
}

// CreateAPIClient inserts an active client and returns it with its new id.
func (r *APIClientRepository) CreateAPIClient(ctx context.Context, client domain.APIClient) (domain.APIClient, error) {
	client.ID = uuid.NewString()
	if client.Status == "" {
		client.Status = domain.APIClientStatusActive
	}

	const query = `
		INSERT INTO api_clients (id, client_id, secret_hash, scopes, status, created_at, updated_at)
		VALUES ($1::uuid, $2, $3, $4, $5, now(), now())
	`

	_, err := r.db.ExecContext(ctx, query, client.ID, client.ClientID, client.SecretHash, strings.Join(client.Scopes, " "), client.Status)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.APIClient{}, fmt.Errorf("%w: %s", ErrClientExists, client.ClientID)
		}
		return domain.APIClient{}, fmt.Errorf("repository: create api client failed: %w", err)
	}
	return client, nil
}

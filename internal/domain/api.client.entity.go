package domain

import "slices"

const APIClientStatusActive = "active"

// APIClient is a machine caller allowed to request ids and store files.
type APIClient struct {
	ID         string
	ClientID   string
	SecretHash string
	Scopes     []string
	Status     string
}

func (c APIClient) Active() bool {
	return c.Status == APIClientStatusActive
}

func (c APIClient) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

package domain

// Scopes granted to API clients.
const (
	ScopeIDsWrite   = "ids:write"
	ScopeIDsRead    = "ids:read"
	ScopeFilesWrite = "files:write"
)

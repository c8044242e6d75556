package jwt

import "context"

type claimsKey struct{}

// SetClaims attaches the verified claims of the calling API client. The HTTP
// auth middleware calls it once the bearer token passes Verify, so services
// below the handler can read the client id and granted scopes.
func SetClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaims returns the calling client's claims. ok is false on routes that
// skip authentication, such as the token endpoint and /healthz.
func GetClaims(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}

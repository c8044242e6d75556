package vo

type AuthToken struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int64    `json:"expires_in,omitempty"`
	Scope       []string `json:"scope"`
}

package httpclient

import "net/http"

// AuthType identifies the authentication method.
type AuthType int

const (
	// AuthNone disables authentication.
	AuthNone AuthType = iota
	// AuthAPIKey sends the key verbatim in a named header.
	AuthAPIKey
)

// AuthConfig configures request authentication.
type AuthConfig struct {
	// Type is the authentication method.
	Type AuthType
	// Key is the API key value (AuthAPIKey).
	Key string
	// Header is the header carrying the key. Defaults to "X-API-Key".
	Header string
}

// APIKeyAuthHeader creates an API key auth config with a custom header
// name. AssemblyAI, for one, expects the raw key in "authorization".
func APIKeyAuthHeader(key, header string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, Header: header}
}

func (a *AuthConfig) apply(req *http.Request) {
	if a == nil {
		return
	}
	if a.Type != AuthAPIKey {
		return
	}
	header := a.Header
	if header == "" {
		header = "X-API-Key"
	}
	req.Header.Set(header, a.Key)
}

package models

// TokenResponse is the login response body: the issued bearer token plus
// the constant token-type tag expected by OAuth2-style clients.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MessageResponse is a plain status message body, used by delete
// confirmations and the service root endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body of the health probe endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

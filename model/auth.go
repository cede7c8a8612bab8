// model/auth.go
package model

// TokenResponse is the login response from POST /admin/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

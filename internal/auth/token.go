// internal/auth/token.go
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewCapabilityToken returns a fresh opaque credential for a user. Tokens
// carry no claims; every request resolves one back to its user by lookup,
// so revocation is a row update and nothing has to be signed.
func NewCapabilityToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generating capability token: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

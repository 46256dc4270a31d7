// Package signature implements the HMAC-SHA256 scheme used to authenticate
// tracker webhook deliveries.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign computes the lowercase hex HMAC-SHA256 signature of payload.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether provided is the valid signature of body under secret.
// The comparison is constant-time.
func Verify(body []byte, provided, secret string) bool {
	expected := Sign(body, secret)
	return hmac.Equal([]byte(provided), []byte(expected))
}

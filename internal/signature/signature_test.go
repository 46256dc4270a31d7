package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestSign(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		secret  string
	}{
		{
			name:    "basic payload",
			payload: []byte(`{"action":"card_created","id":"evt-123"}`),
			secret:  "my-secret-key",
		},
		{
			name:    "empty payload",
			payload: []byte(`{}`),
			secret:  "secret",
		},
		{
			name:    "empty secret",
			payload: []byte(`{"test":true}`),
			secret:  "",
		},
		{
			name:    "unicode payload",
			payload: []byte(`{"title":"café","price":"€10"}`),
			secret:  "unicode-key-日本語",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := Sign(tt.payload, tt.secret)

			// Verify it's a valid hex string
			decoded, err := hex.DecodeString(sig)
			if err != nil {
				t.Fatalf("signature is not valid hex: %v", err)
			}

			// HMAC-SHA256 should always produce 32 bytes (64 hex chars)
			if len(decoded) != 32 {
				t.Fatalf("expected 32 bytes, got %d", len(decoded))
			}

			// Verify against standard library
			mac := hmac.New(sha256.New, []byte(tt.secret))
			mac.Write(tt.payload)
			expected := hex.EncodeToString(mac.Sum(nil))

			if sig != expected {
				t.Errorf("signature mismatch:\n  got:  %s\n  want: %s", sig, expected)
			}
		})
	}
}

func TestVerify_RoundTrip(t *testing.T) {
	body := []byte(`{"action":"card_published","id":"evt-1"}`)
	secret := "shared-secret"

	if !Verify(body, Sign(body, secret), secret) {
		t.Error("signature produced by Sign should verify against the same body and secret")
	}
}

func TestVerify_TamperedBody(t *testing.T) {
	body := []byte(`{"action":"card_published","id":"evt-1"}`)
	secret := "shared-secret"
	sig := Sign(body, secret)

	// Flip one bit of the body
	tampered := make([]byte, len(body))
	copy(tampered, body)
	tampered[10] ^= 0x01

	if Verify(tampered, sig, secret) {
		t.Error("a single-bit change to the body should invalidate the signature")
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	body := []byte(`{"action":"card_published","id":"evt-1"}`)
	secret := "shared-secret"
	sig := []byte(Sign(body, secret))

	// Change one hex digit
	if sig[0] == 'a' {
		sig[0] = 'b'
	} else {
		sig[0] = 'a'
	}

	if Verify(body, string(sig), secret) {
		t.Error("a modified signature should not verify")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	body := []byte(`{"action":"card_moved"}`)

	sig := Sign(body, "secret-1")
	if Verify(body, sig, "secret-2") {
		t.Error("signature under one secret should not verify under another")
	}
}

func TestSign_Deterministic(t *testing.T) {
	payload := []byte(`{"action":"card_updated"}`)
	secret := "test-secret"

	sig1 := Sign(payload, secret)
	sig2 := Sign(payload, secret)

	if sig1 != sig2 {
		t.Error("signing the same payload twice should produce the same signature")
	}
}

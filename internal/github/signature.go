package github

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

const signaturePrefix = "sha256="

// ComputeSignature returns the X-Hub-Signature-256 value for body under secret
func ComputeSignature(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether signature was produced for the raw, unparsed
// body with secret. A length mismatch returns before the constant-time compare.
func VerifySignature(body []byte, signature string, secret string) bool {
	if signature == "" {
		return false
	}

	expected := []byte(ComputeSignature(body, secret))
	provided := []byte(signature)
	if len(expected) != len(provided) {
		return false
	}

	return subtle.ConstantTimeCompare(expected, provided) == 1
}

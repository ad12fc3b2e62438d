package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// GenerateSignature creates an unpadded base64url HMAC-SHA256 signature.
func GenerateSignature(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// VerifySignature validates an HMAC-SHA256 signature.
func VerifySignature(payload []byte, signature, secret string) bool {
	expected := GenerateSignature(payload, secret)
	return hmac.Equal([]byte(signature), []byte(expected))
}

// SignValue returns "value.signature".
func SignValue(value, secret string) string {
	return value + "." + GenerateSignature([]byte(value), secret)
}

// UnsignValue returns the value of a string produced by SignValue, or false
// when the signature does not match.
func UnsignValue(signed, secret string) (string, bool) {
	i := strings.LastIndexByte(signed, '.')
	if i <= 0 || i == len(signed)-1 {
		return "", false
	}
	value, sig := signed[:i], signed[i+1:]
	if !VerifySignature([]byte(value), sig, secret) {
		return "", false
	}
	return value, true
}

package tools

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// VerifySignature computes HMAC-SHA256 over body keyed by secret and encodes
// the raw digest as base64, trimming trailing whitespace (the platform sends
// the header without the newline that some encoders append). The comparison
// is constant time.
func VerifySignature(secret, body []byte, given string) (calculated string, valid bool) {
	mac := hmac.New(sha256.New, secret)
	_, _ = mac.Write(body)
	calculated = strings.TrimSpace(base64.StdEncoding.EncodeToString(mac.Sum(nil)))
	valid = hmac.Equal([]byte(given), []byte(calculated))
	return calculated, valid
}

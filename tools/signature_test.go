package tools

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signBody(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestVerifySignatureValid(t *testing.T) {
	secret := []byte("sekret")
	body := []byte(`{"result":[{"id":"m1"}]}`)

	calculated, valid := VerifySignature(secret, body, signBody(secret, body))
	assert.True(t, valid)
	assert.Equal(t, signBody(secret, body), calculated)
}

func TestVerifySignatureRejectsMutatedBody(t *testing.T) {
	secret := []byte("sekret")
	body := []byte(`{"result":[{"id":"m1"}]}`)
	given := signBody(secret, body)

	// flip one bit of the body
	mutated := append([]byte(nil), body...)
	mutated[0] ^= 0x01

	_, valid := VerifySignature(secret, mutated, given)
	assert.False(t, valid)
}

func TestVerifySignatureRejectsWrongSecret(t *testing.T) {
	body := []byte("payload")
	given := signBody([]byte("sekret"), body)

	_, valid := VerifySignature([]byte("other"), body, given)
	assert.False(t, valid)
}

func TestVerifySignatureCalculatedHasNoTrailingWhitespace(t *testing.T) {
	calculated, _ := VerifySignature([]byte("k"), []byte("v"), "")
	assert.Equal(t, strings.TrimSpace(calculated), calculated)
	// digest sha256 em base64: 44 chars, com padding
	assert.Len(t, calculated, 44)
}

package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

type SignatureVerifier interface {
	Verify(orderID, paymentID, signature string) bool
}

// AcceptAllVerifier is the stub used by the simulated flow. It must be
// replaced by a real verifier in any deployment that talks to a gateway.
type AcceptAllVerifier struct{}

func (AcceptAllVerifier) Verify(_, _, _ string) bool {
	return true
}

// HMACVerifier checks the gateway-style signature
// hex(hmac-sha256(orderID + "|" + paymentID)).
type HMACVerifier struct {
	secret []byte
}

func NewHMACVerifier(secret string) HMACVerifier {
	return HMACVerifier{secret: []byte(secret)}
}

func (v HMACVerifier) Verify(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/Sahill13/backendhost/internal/model"
)

// VerifySignature checks the processor callback signature: HMAC-SHA256 over
// "<processorOrderID>|<processorPaymentID>" keyed by the shared secret,
// hex-encoded. Missing fields fail before any crypto is attempted. A mismatch
// means tampering and is never retried.
func VerifySignature(processorOrderID, processorPaymentID, signature, secret string) error {
	if processorOrderID == "" || processorPaymentID == "" || signature == "" {
		return model.ErrValidation
	}
	if secret == "" {
		return model.ErrConfiguration
	}

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s|%s", processorOrderID, processorPaymentID)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return model.ErrSignatureMismatch
	}

	return nil
}

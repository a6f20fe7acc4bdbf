// Package note generates the human-readable codes a payer carries
// through the bank transfer flow: transaction references and license
// keys. Uniqueness is probabilistic; the intent store's unique index
// on the reference catches the rare collision at confirm time.
package note

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	referenceCodeLength = 6
	licenseCodeLength   = 12
)

// Generate produces a transaction reference of the form
// GFOCUS-<PLAN>-<6 random chars>. The plan defaults to PRO.
func Generate(plan string) string {
	plan = strings.ToUpper(strings.TrimSpace(plan))
	if plan == "" {
		plan = "PRO"
	}
	return fmt.Sprintf("GFOCUS-%s-%s", plan, randomCode(referenceCodeLength))
}

// GenerateLicenseKey produces an opaque license key of the form
// GF-<12 random chars>. The key is not valid until its intent is paid.
func GenerateLicenseKey() string {
	return "GF-" + randomCode(licenseCodeLength)
}

func randomCode(length int) string {
	max := big.NewInt(int64(len(alphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is
			// broken; nothing sensible to do but stop.
			panic(fmt.Sprintf("random source unavailable: %v", err))
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b)
}

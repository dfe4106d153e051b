// Package id generates the 32-character hexadecimal public identifiers
// carried by loans, savings and installment records.
package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 draws 16 random bytes and encodes them as 32 lowercase hex
// characters. No separators or prefixes; the dashless form matches the
// uuid-derived ids the seed dataset uses.
func NewID32() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

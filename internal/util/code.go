package util

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateVerificationCode returns a 6-digit numeric code, zero-padded.
func GenerateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

package util

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomSuffix returns a short random token of the given length, suitable
// for building human-skimmable identifiers.
func RandomSuffix(length int) string {
	var builder strings.Builder
	builder.Grow(length)

	max := big.NewInt(int64(len(suffixAlphabet)))
	for range length {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand never fails on supported platforms; fall back
			// to a fixed character rather than panic in an id generator.
			builder.WriteByte(suffixAlphabet[0])

			continue
		}
		builder.WriteByte(suffixAlphabet[n.Int64()])
	}

	return builder.String()
}

// NewScanID builds a scan record identifier from the wall clock and a short
// random suffix, e.g. "scan-1717243530123-k3x9p".
func NewScanID(now time.Time) string {
	return fmt.Sprintf("scan-%d-%s", now.UnixMilli(), RandomSuffix(5))
}

// EmailLocalPart returns the part of an email address before the "@", or
// the whole string when no "@" is present.
func EmailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}

	return email
}

package utils

import (
	"math/rand"
	"strings"
)

// QuoteRefLength is the fixed width of externally visible quote references.
const QuoteRefLength = 8

// GenerateQuoteRef returns a random numeric quote reference. Uniqueness is
// enforced by the caller against storage, not by the generator.
func GenerateQuoteRef() string {
	var sb strings.Builder
	sb.Grow(QuoteRefLength)
	for i := 0; i < QuoteRefLength; i++ {
		sb.WriteByte(byte('0' + rand.Intn(10)))
	}
	return sb.String()
}

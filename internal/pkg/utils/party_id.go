package utils

import (
	"strings"
	"unicode"

	"github.com/labstack/gommon/random"
)

// PartyIDCandidate derives a party id candidate from a CPO owner name:
// the upper-cased first letters of its words, padded with random
// uppercase letters up to minimum length. Collision handling is the
// caller's job; on retry attempt > 0 the candidate is fully random.
func PartyIDCandidate(ownerName string, attempt int) string {
	const minLen = 3

	if attempt > 0 {
		return random.String(minLen, random.Uppercase)
	}

	var b strings.Builder
	for _, word := range strings.Fields(ownerName) {
		for _, r := range word {
			if unicode.IsLetter(r) {
				b.WriteRune(unicode.ToUpper(r))
				break
			}
		}
		if b.Len() >= minLen {
			break
		}
	}

	candidate := b.String()
	if len(candidate) < minLen {
		candidate += random.String(uint8(minLen-len(candidate)), random.Uppercase)
	}

	return candidate[:minLen]
}

// GeneratePassword returns a temporary alphanumeric credential for a
// freshly onboarded CPO account.
func GeneratePassword() string {
	return random.String(12, random.Alphanumeric)
}

package entity

import "strings"

// TokenDigits is the exact digit count of a genuine utility credit token.
const TokenDigits = 20

// RejectAllZeroTokens controls whether a 20-digit token consisting entirely
// of zeros is treated as an invalid placeholder. The vending system has
// historically emitted all-zero tokens for some failed issuances, but the
// exclusion was never enabled in production, so the rule ships disabled.
// Keep it as a toggle rather than deleting it: operations may need to flip
// it when the vendor confirms the placeholder behaviour.
var RejectAllZeroTokens = false

// TokenRecord is a row from the token history table, written asynchronously
// by the external token-vending process. Its presence with a valid Luku or
// Passcode is the authoritative proof that a payment actually produced
// credit, regardless of what the payment row's status says.
type TokenRecord struct {
	TxnID    string
	Luku     string
	Passcode string
	Units    string
}

// HasValidToken reports whether either token field passes IsValidToken.
func (t *TokenRecord) HasValidToken() bool {
	if t == nil {
		return false
	}
	return IsValidToken(t.Luku) || IsValidToken(t.Passcode)
}

// IsValidToken reports whether candidate is a genuinely issued utility
// credit token: after stripping all whitespace it must consist of exactly
// TokenDigits decimal digits. Empty and whitespace-only input is invalid.
func IsValidToken(candidate string) bool {
	cleaned := stripWhitespace(candidate)
	if len(cleaned) != TokenDigits {
		return false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}
	if RejectAllZeroTokens && IsAllZeros(cleaned) {
		return false
	}
	return true
}

// IsAllZeros reports whether the candidate, ignoring whitespace, is a
// non-empty run of zeros.
func IsAllZeros(candidate string) bool {
	cleaned := stripWhitespace(candidate)
	if cleaned == "" {
		return false
	}
	for _, r := range cleaned {
		if r != '0' {
			return false
		}
	}
	return true
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

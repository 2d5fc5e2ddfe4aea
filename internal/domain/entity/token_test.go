package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidToken(t *testing.T) {
	testCases := []struct {
		name      string
		candidate string
		expected  bool
	}{
		{"TwentyDigits", "12345678901234567890", true},
		{"SpacedGroups", "1234 5678 9012 3456 7890", true},
		{"TabsAndSpaces", "12345\t67890 12345 67890", true},
		{"LeadingTrailingSpace", "  12345678901234567890  ", true},
		{"AllZeros", "00000000000000000000", true},
		{"Empty", "", false},
		{"WhitespaceOnly", "   ", false},
		{"TooShort", "1234567890123456789", false},
		{"TooLong", "123456789012345678901", false},
		{"Letters", "1234567890123456789a", false},
		{"Hyphenated", "1234-5678-9012-3456-7890", false},
		{"FailureText", "Transaction Failed", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsValidToken(tc.candidate))
		})
	}
}

func TestIsValidTokenAllZeroToggle(t *testing.T) {
	RejectAllZeroTokens = true
	defer func() { RejectAllZeroTokens = false }()

	assert.False(t, IsValidToken("00000000000000000000"))
	assert.False(t, IsValidToken("0000 0000 0000 0000 0000"))
	assert.True(t, IsValidToken("00000000000000000001"))
}

func TestIsAllZeros(t *testing.T) {
	assert.True(t, IsAllZeros("00000000000000000000"))
	assert.True(t, IsAllZeros("0000 0000"))
	assert.True(t, IsAllZeros("0"))
	assert.False(t, IsAllZeros(""))
	assert.False(t, IsAllZeros("   "))
	assert.False(t, IsAllZeros("00000000000000000001"))
}

func TestHasValidToken(t *testing.T) {
	testCases := []struct {
		name     string
		token    *TokenRecord
		expected bool
	}{
		{"NilRecord", nil, false},
		{"NoFields", &TokenRecord{TxnID: "TX1"}, false},
		{"ValidLuku", &TokenRecord{Luku: "12345678901234567890"}, true},
		{"ValidPasscode", &TokenRecord{Passcode: "09876543210987654321"}, true},
		{"BothInvalid", &TokenRecord{Luku: "FAILED", Passcode: "123"}, false},
		{"LukuInvalidPasscodeValid", &TokenRecord{Luku: "xx", Passcode: "12345678901234567890"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.token.HasValidToken())
		})
	}
}

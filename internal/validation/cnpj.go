package validation

import "strings"

const cnpjLength = 14

// Regressive weights for the CNPJ check digits. The first check digit uses
// the list minus its leading element over the 12-digit prefix, the second
// uses the full list over the 13-digit intermediate.
var cnpjWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

// OnlyDigits strips every character that is not an ASCII digit.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// ValidCNPJ reports whether raw contains a valid CNPJ. Non-digit characters
// are stripped before checking. Repeated-digit sequences such as
// "11111111111111" are rejected even though they are arithmetically
// self-consistent. Never panics, for any input.
func ValidCNPJ(raw string) bool {
	cnpj := OnlyDigits(raw)
	if len(cnpj) != cnpjLength {
		return false
	}
	if isRepeatedSequence(cnpj) {
		return false
	}

	recomputed := appendCheckDigit(cnpj[:cnpjLength-2], cnpjWeights[1:])
	recomputed = appendCheckDigit(recomputed, cnpjWeights)
	return recomputed == cnpj
}

// appendCheckDigit computes the check digit for prefix using the given
// weights and returns prefix with the digit appended.
func appendCheckDigit(prefix string, weights []int) string {
	total := 0
	for i, weight := range weights {
		total += int(prefix[i]-'0') * weight
	}

	digit := 11 - total%11
	if digit > 9 {
		digit = 0
	}
	return prefix + string(byte('0'+digit))
}

func isRepeatedSequence(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

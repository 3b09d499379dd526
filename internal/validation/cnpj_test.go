package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCNPJ(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid digits only", "34427619000107", true},
		{"valid formatted", "61.577.705/0001-60", true},
		{"wrong check digits", "34427619999907", false},
		{"repeated sequence", "11111111111111", false},
		{"all zeros", "00000000000000", false},
		{"empty", "", false},
		{"too short", "3442761900010", false},
		{"too long", "344276190001070", false},
		{"letters only", "abcdefghijklmn", false},
		{"digits with trailing junk", "34427619000107x", true},
		{"whitespace", "   ", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidCNPJ(tc.input))
		})
	}
}

func TestValidCNPJNeverPanics(t *testing.T) {
	inputs := []string{"", "1", strings.Repeat("9", 100), "!!@@##$$%%^^&&**", "١٢٣٤٥٦٧٨٩٠١٢٣٤"}
	for _, in := range inputs {
		assert.NotPanics(t, func() { ValidCNPJ(in) }, "input %q", in)
	}
}

func TestValidCNPJAcceptsRecomputedDigits(t *testing.T) {
	// Any 12-digit prefix extended by the validator's own check-digit
	// arithmetic must validate, unless it degenerates into a repeated
	// sequence.
	prefixes := []string{"344276190001", "615777050001", "112223330001", "999888770001"}
	for _, prefix := range prefixes {
		full := appendCheckDigit(prefix, cnpjWeights[1:])
		full = appendCheckDigit(full, cnpjWeights)
		assert.True(t, ValidCNPJ(full), "recomputed %s", full)
	}
}

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "61577705000160", OnlyDigits("61.577.705/0001-60"))
	assert.Equal(t, "", OnlyDigits("no digits here"))
	assert.Equal(t, "12345678", OnlyDigits("12345-678"))
}

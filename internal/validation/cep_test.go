package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCEP(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"01310930", true},
		{"00000000", true},
		{"0131093", false},
		{"013109300", false},
		{"01310-93", false},
		{"abcdefgh", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidCEP(tc.input), "input %q", tc.input)
	}
}

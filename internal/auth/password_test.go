package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	require.NoError(t, err)
	assert.NotContains(t, hash, "s3cret")
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.NoError(t, ComparePassword(hash, "s3cret"))
	assert.Error(t, ComparePassword(hash, "wrong"))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("s3cret", 4)
	require.NoError(t, err)
	second, err := HashPassword("s3cret", 4)
	require.NoError(t, err)

	// Same password, fresh salt, different hash; both still verify.
	assert.NotEqual(t, first, second)
	assert.NoError(t, ComparePassword(first, "s3cret"))
	assert.NoError(t, ComparePassword(second, "s3cret"))
}

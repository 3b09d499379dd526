package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	assert.True(t, Authorize(1, 1))
	assert.False(t, Authorize(1, 2))
	assert.False(t, Authorize(2, 1))
	assert.False(t, Authorize(0, 1))
	assert.True(t, Authorize(0, 0))
}

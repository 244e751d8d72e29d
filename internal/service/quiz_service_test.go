package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampAttemptCap(t *testing.T) {
	assert.Equal(t, 0, clampAttemptCap(-5))
	assert.Equal(t, 0, clampAttemptCap(0))
	assert.Equal(t, 3, clampAttemptCap(3))
}

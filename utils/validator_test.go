package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("jane.doe@example.co.nz"))
	assert.False(t, ValidateEmail("jane.doe"))
	assert.False(t, ValidateEmail("@example.com"))
	assert.False(t, ValidateEmail(""))
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "ABC123", SanitizeInput("  ABC123  "))
	assert.Equal(t, "ABC123", SanitizeInput("ABC\x00123"))
	assert.Equal(t, "", SanitizeInput("   "))
}

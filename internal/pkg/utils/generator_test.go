package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateLicenseNumber(t *testing.T) {
	assert.Equal(t, "LIC_64F00000", GenerateLicenseNumber("LIC", "64f000000000000000000001"))
	assert.Equal(t, "PHARM_64F00000", GenerateLicenseNumber("PHARM", "64f000000000000000000001"))
	assert.Equal(t, "LIC_AB12", GenerateLicenseNumber("LIC", "ab-12"))
}

func TestGenerateSessionIDUnique(t *testing.T) {
	assert.NotEqual(t, GenerateSessionID(), GenerateSessionID())
}

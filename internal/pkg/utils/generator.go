package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateSessionID() string {
	return uuid.New().String()
}

// GenerateLicenseNumber synthesizes a placeholder license number for
// registrations that omit one.
func GenerateLicenseNumber(prefix, userID string) string {
	id := strings.ReplaceAll(userID, "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s_%s", prefix, strings.ToUpper(id))
}

package id

import (
	"strings"

	"github.com/google/uuid"
)

// NewID32 returns exactly 32 lowercase hex characters (a v4 UUID without dashes).
func NewID32() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

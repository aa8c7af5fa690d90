package service

import (
	"strings"

	"github.com/google/uuid"
)

// newID builds short prefixed codes like "TSK-9f8a6c21" from a random UUID.
func newID(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + hex[:8]
}

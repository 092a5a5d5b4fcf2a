package service

import (
	"strings"

	"github.com/google/uuid"
)

// newID builds a prefixed short identifier, e.g. "review_3f2a91bc".
func newID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

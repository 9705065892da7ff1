package model

import (
	"regexp"
	"strings"
)

var blockSpaces = regexp.MustCompile(`\s+`)

// NormalizeBlock canonicalizes a cafeteria/block identifier: trimmed,
// lower-cased, internal whitespace collapsed to hyphens. The same form is
// used at placement, listing and assignment so equality filters line up.
func NormalizeBlock(id string) string {
	return blockSpaces.ReplaceAllString(strings.ToLower(strings.TrimSpace(id)), "-")
}

func IsKnownBlock(block string) bool {
	for _, b := range KnownBlocks {
		if b == block {
			return true
		}
	}
	return false
}

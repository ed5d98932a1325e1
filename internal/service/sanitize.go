package service

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// textPolicy strips all markup from text the viewer types in.
var textPolicy = bluemonday.StrictPolicy()

// cleanText trims and sanitizes entered text. An empty result means the input
// should be ignored.
func cleanText(raw string) string {
	return strings.TrimSpace(textPolicy.Sanitize(strings.TrimSpace(raw)))
}

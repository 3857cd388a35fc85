package utils

import "regexp"

// modelCodeRegex matches the short model code the catalog site embeds in the
// last path segment of a product URL, e.g. /mobiles/samsung-galaxy-s24-p123.
var modelCodeRegex = regexp.MustCompile(`/mobiles/([^/?#]+)`)

// ModelCodeFromURL extracts the site-local model code from a product URL.
// Returns an empty string when the URL does not match the expected pattern.
func ModelCodeFromURL(productURL string) string {
	if productURL == "" {
		return ""
	}
	matches := modelCodeRegex.FindStringSubmatch(productURL)
	if len(matches) > 1 {
		return matches[1]
	}
	return ""
}

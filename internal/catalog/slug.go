package catalog

import (
	"regexp"
	"strings"
)

var (
	slugInvalidRe  = regexp.MustCompile(`[^a-z0-9]`)
	slugCollapseRe = regexp.MustCompile(`-+`)
)

// Slugify normalizes a brand label the way the storefront does: lowercase,
// every non-alphanumeric rune becomes a hyphen, runs collapse, edges trim.
// "L'Oréal Paris" becomes "l-or-al-paris".
func Slugify(value string) string {
	slug := strings.ToLower(value)
	slug = slugInvalidRe.ReplaceAllString(slug, "-")
	slug = slugCollapseRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

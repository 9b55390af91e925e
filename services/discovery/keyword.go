package discovery

import "strings"

// KeywordForSlug maps a category slug to the catalog search keyword. Unknown
// slugs are passed through lowercased so new categories work without a
// mapping.
func KeywordForSlug(slug string) string {
	switch strings.ToLower(slug) {
	case "musikk":
		return "music"
	case "sport":
		return "sports"
	case "teater-show":
		return "theater"
	default:
		return strings.ToLower(slug)
	}
}

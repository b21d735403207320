package store

import (
	"strings"

	"github.com/linkvaultapp/linkvault/models"
)

// NormalizeTags turns raw comma-separated form input into the stored
// tag list: trimmed, lowercased, empties dropped, duplicates collapsed
// to their first occurrence. A link always carries at least one tag, so
// an empty result becomes ["uncategorized"].
func NormalizeTags(raw string) []string {
	seen := make(map[string]bool)
	tags := []string{}

	for _, part := range strings.Split(raw, ",") {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	if len(tags) == 0 {
		return []string{models.DefaultTag}
	}
	return tags
}

package posts

import "strings"

// ParseTagString splits a comma-separated tag string into normalized
// tag names: whitespace-trimmed, lowercased, empties dropped,
// duplicates removed keeping first-seen order.
func ParseTagString(tags string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, part := range strings.Split(tags, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

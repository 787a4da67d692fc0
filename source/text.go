package source

import (
	"strings"

	kvshape "github.com/reoring/kvshape"
)

// Text splits raw on commas, then each segment on its first colon. Keys and
// values are trimmed. Segments without a colon are discarded silently.
func Text(raw string) []kvshape.Pair {
	var out []kvshape.Pair
	for _, seg := range strings.Split(raw, ",") {
		parts := strings.SplitN(seg, ":", 2)
		if len(parts) != 2 {
			continue
		}
		out = append(out, kvshape.Pair{
			Key:   strings.TrimSpace(parts[0]),
			Value: strings.TrimSpace(parts[1]),
		})
	}
	return out
}

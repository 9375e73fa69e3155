package standard

import "strings"

// labelStopwords are tokens too generic to signal a concept on their
// own; they are dropped before scoring.
var labelStopwords = map[string]struct{}{
	"and": {}, "of": {}, "the": {}, "or": {}, "in": {}, "from": {},
	"per": {}, "to": {},
}

// similarity scores two labels in [0, 1] by Dice coefficient over
// their normalized token sets. Equal normalized labels score 1.
func similarity(a, b string) float64 {
	ta, tb := tokens(a), tokens(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(ta))
	for _, t := range ta {
		seen[t] = struct{}{}
	}
	common := 0
	for _, t := range tb {
		if _, ok := seen[t]; ok {
			common++
		}
	}
	return 2 * float64(common) / float64(len(ta)+len(tb))
}

func tokens(s string) []string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	out := fields[:0]
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, stop := labelStopwords[f]; stop {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

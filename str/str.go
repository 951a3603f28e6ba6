package str

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// StartsWith reports whether text begins with prefix. With ignoreCase the
// comparison is case-folded.
func StartsWith(text, prefix string, ignoreCase bool) bool {
	if ignoreCase {
		return strings.HasPrefix(strings.ToLower(text), strings.ToLower(prefix))
	}
	return strings.HasPrefix(text, prefix)
}

// EndsWith reports whether text ends with suffix. With ignoreCase the
// comparison is case-folded.
func EndsWith(text, suffix string, ignoreCase bool) bool {
	if ignoreCase {
		return strings.HasSuffix(strings.ToLower(text), strings.ToLower(suffix))
	}
	return strings.HasSuffix(text, suffix)
}

// Includes reports whether needle occurs within text.
func Includes(text, needle string) bool {
	return strings.Contains(text, needle)
}

// Len returns the number of runes in text.
func Len(text string) int {
	return utf8.RuneCountInString(text)
}

// Interpolate replaces %name% placeholders in message with values from
// context. Placeholders without a context entry are left untouched.
func Interpolate(message string, context map[string]any) string {
	if len(context) == 0 {
		return message
	}
	pairs := make([]string, 0, len(context)*2)
	for k, v := range context {
		pairs = append(pairs, "%"+k+"%", fmt.Sprintf("%v", v))
	}
	return strings.NewReplacer(pairs...).Replace(message)
}

package str

import (
	"strings"

	"github.com/appkit-go/appkit/errors"
)

// Dynamic substitutes every balanced leftDelim...rightDelim group in text
// with one uniformly random alternative from the group's separator-split
// content:
//
//	Dynamic("{Hi|Hello}, my name is Bob!", "{", "}", "|")
//
// returns either "Hi, my name is Bob!" or "Hello, my name is Bob!".
// Mismatched delimiter counts are an invalid argument.
func Dynamic(text, leftDelim, rightDelim, separator string) (string, error) {
	if leftDelim == "" || rightDelim == "" {
		return "", errors.InvalidArgument("delimiters", "delimiters must not be empty")
	}
	if strings.Count(text, leftDelim) != strings.Count(text, rightDelim) {
		return "", errors.InvalidArgument("text", "the number of opening and closing delimiters must match")
	}

	var b strings.Builder
	b.Grow(len(text))
	rest := text
	for {
		start := strings.Index(rest, leftDelim)
		if start < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		end := strings.Index(rest[start+len(leftDelim):], rightDelim)
		if end < 0 {
			return "", errors.InvalidArgument("text", "unterminated delimiter group")
		}

		b.WriteString(rest[:start])
		inner := rest[start+len(leftDelim) : start+len(leftDelim)+end]
		choices := strings.Split(inner, separator)
		b.WriteString(choices[randIndex(len(choices))])
		rest = rest[start+len(leftDelim)+end+len(rightDelim):]
	}
}

package str

import (
	"strings"
	"unicode"

	"github.com/appkit-go/appkit/errors"
)

// DefaultDelimiters is the delimiter set Camelize splits on.
const DefaultDelimiters = "_-"

// DefaultDelimiter is the delimiter Uncamelize inserts.
const DefaultDelimiter = "_"

// Camelize converts a delimited string to UpperCamelCase using the default
// "_-" delimiter set: "coco_bongo" becomes "CocoBongo".
func Camelize(text string) string {
	out, _ := CamelizeWith(text, DefaultDelimiters)
	return out
}

// CamelizeWith converts a delimited string to UpperCamelCase. Any rune in
// delimiters starts a new word; the first letter of each word is
// upper-cased and all other letters are lower-cased. An empty delimiter
// set is an invalid argument.
func CamelizeWith(text, delimiters string) (string, error) {
	if delimiters == "" {
		return "", errors.InvalidArgument("delimiters", "delimiter set must not be empty")
	}

	var b strings.Builder
	b.Grow(len(text))
	upperNext := true
	for _, r := range text {
		if strings.ContainsRune(delimiters, r) {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String(), nil
}

// Uncamelize converts a camelized string to lower case with "_" inserted
// before interior upper-case letters: "CocoBongo" becomes "coco_bongo".
func Uncamelize(text string) string {
	out, _ := UncamelizeWith(text, DefaultDelimiter)
	return out
}

// UncamelizeWith converts a camelized string to lower case, inserting
// delimiter before every upper-case letter except at the start. The
// delimiter must be exactly one rune.
func UncamelizeWith(text, delimiter string) (string, error) {
	runes := []rune(delimiter)
	if len(runes) != 1 {
		return "", errors.InvalidArgument("delimiter", "delimiter must be a single character")
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/4)
	for i, r := range text {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteRune(runes[0])
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

// Humanize collapses underscore and dash runs in a trimmed string into
// single spaces: "kittens-are_cats" becomes "kittens are cats".
func Humanize(text string) string {
	text = strings.TrimSpace(text)
	var b strings.Builder
	b.Grow(len(text))
	pending := false
	for _, r := range text {
		if r == '_' || r == '-' {
			pending = true
			continue
		}
		if pending && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pending = false
		b.WriteRune(r)
	}
	return b.String()
}

// Underscore replaces whitespace runs in a trimmed string with single
// underscores: "look behind" becomes "look_behind".
func Underscore(text string) string {
	return strings.Join(strings.Fields(text), "_")
}

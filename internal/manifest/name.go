package manifest

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-+`)
	invalidChars  = regexp.MustCompile(`[^a-z0-9._-]`)

	// Word boundaries inside camel-cased input: "CoolTitle" → "Cool-Title",
	// "HTTPServer" → "HTTP-Server".
	lowerUpper = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	upperLower = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)

	// foldMarks decomposes characters and drops combining marks, so
	// "café" normalizes to "cafe" before the invalid-character strip.
	foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// ToValidName normalizes a raw project name into a valid manifest name
// token: camel-case words are split, everything is lowercased, whitespace
// runs collapse to a single hyphen, and characters invalid in a package
// name are stripped. It is idempotent.
func ToValidName(raw string) string {
	name := raw
	if folded, _, err := transform.String(foldMarks, raw); err == nil {
		name = folded
	}

	name = lowerUpper.ReplaceAllString(name, "$1-$2")
	name = upperLower.ReplaceAllString(name, "$1-$2")
	name = strings.ToLower(strings.TrimSpace(name))
	name = whitespaceRun.ReplaceAllString(name, "-")
	name = invalidChars.ReplaceAllString(name, "")
	name = hyphenRun.ReplaceAllString(name, "-")

	// A package name must not start with a dot, underscore, or hyphen.
	name = strings.TrimLeft(name, "-._")
	return strings.TrimRight(name, "-")
}

// Package textrules holds the pure string transforms applied during record
// normalization: per-word capitalization, unit-abbreviation cleanup, and
// spec-key camelCasing.
package textrules

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/joseph-ayodele/catalog-normalizer/constants"
)

var (
	rePunct    = regexp.MustCompile("[-()\"#/@;:<>{}`+=~|.!?,]")
	reNonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)
)

// CapitalizeWords uppercases the first letter of each space-delimited token,
// but only when that letter is currently lowercase. All other characters are
// left untouched, so acronyms and product codes survive as-is.
func CapitalizeWords(text string) string {
	if text == "" {
		return text
	}
	words := strings.Split(strings.TrimSpace(text), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		runes := []rune(word)
		if unicode.IsLower(runes[0]) {
			runes[0] = unicode.ToUpper(runes[0])
			words[i] = string(runes)
		}
	}
	return strings.Join(words, " ")
}

// NormalizeUnits applies the fixed unit-abbreviation replacement table, in
// order, over the already-substituted string.
func NormalizeUnits(text string) string {
	if text == "" {
		return text
	}
	for _, r := range constants.UnitReplacements {
		text = strings.ReplaceAll(text, r.Old, r.New)
	}
	return text
}

// ToCamelCase converts a spec key like `Lift Height (max.)` to
// `liftHeightMax`: title-case each space-delimited token, lowercase the first
// token entirely, concatenate, then strip punctuation and anything else
// non-alphanumeric.
func ToCamelCase(text string) string {
	if text == "" {
		return text
	}
	// already-camelCase keys pass through, keeping the transform idempotent
	if !strings.Contains(text, " ") && !reNonAlnum.MatchString(text) {
		if r := []rune(text)[0]; unicode.IsLower(r) || unicode.IsDigit(r) {
			return text
		}
	}
	parts := strings.Split(text, " ")
	for i, p := range parts {
		parts[i] = titleCase(p)
	}
	parts[0] = strings.ToLower(parts[0])
	result := strings.Join(parts, "")

	result = rePunct.ReplaceAllString(result, "")
	result = reNonAlnum.ReplaceAllString(result, "")
	return result
}

// titleCase uppercases every letter that follows a non-letter and lowercases
// the rest, so "(max.)" becomes "(Max.)" and "ds72" becomes "Ds72".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// Package wording spells out small numbers as English words for generated
// doc comments and identifiers.
package wording

import (
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// MaxValue is the largest number Cardinal and Ordinal can spell.
const MaxValue = 20

// ErrUnsupportedValue is returned for numbers outside [1, MaxValue].
var ErrUnsupportedValue = errors.New("unsupported value")

var cardinals = [MaxValue + 1]string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
	"eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen", "twenty",
}

var ordinals = [MaxValue + 1]string{
	"", "first", "second", "third", "fourth", "fifth", "sixth", "seventh", "eighth", "ninth", "tenth",
	"eleventh", "twelfth", "thirteenth", "fourteenth", "fifteenth", "sixteenth", "seventeenth", "eighteenth", "nineteenth", "twentieth",
}

// Cardinal returns the English word for n, e.g. 3 -> "three".
func Cardinal(n int) (string, error) {
	return lookup(cardinals, n)
}

// Ordinal returns the English ordinal word for n, e.g. 3 -> "third".
func Ordinal(n int) (string, error) {
	return lookup(ordinals, n)
}

func lookup(table [MaxValue + 1]string, n int) (string, error) {
	if n < 1 || n > MaxValue {
		err := errors.Wrapf(ErrUnsupportedValue, "%d is outside [1, %d]", n, MaxValue)
		return "", errors.WithHint(err, "extend the word tables in internal/wording to support larger arities")
	}
	return table[n], nil
}

// TitleCase upper-cases the first letter of s and leaves the rest unchanged.
func TitleCase(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

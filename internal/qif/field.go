package qif

import (
	"strings"
	"unicode/utf8"
)

// extensionPrefix marks two-character field codes such as "XA".
const extensionPrefix = "X"

// SplitField splits a data line into its field code and raw value. Lines of
// one character or fewer carry no field and report ok=false. The code is the
// first character, or the first two when the line starts with "X"; the value
// is the untrimmed remainder. Lengths count runes, not bytes.
func SplitField(line string) (code, value string, ok bool) {
	if utf8.RuneCountInString(line) <= 1 {
		return "", "", false
	}
	chars := 1
	if strings.HasPrefix(line, extensionPrefix) {
		chars = 2
	}
	n := 0
	for range chars {
		_, size := utf8.DecodeRuneInString(line[n:])
		n += size
	}
	return line[:n], line[n:], true
}

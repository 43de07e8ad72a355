package parser

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// westernDigits maps Arabic-Indic and Extended Arabic-Indic digits to ASCII.
var westernDigits = runes.Map(func(r rune) rune {
	switch {
	case r >= '٠' && r <= '٩':
		return '0' + (r - '٠')
	case r >= '۰' && r <= '۹':
		return '0' + (r - '۰')
	}
	return r
})

// Normalize canonicalizes a raw cell value: ASCII digits, single spaces, trimmed.
// nil and empty values yield "".
func Normalize(v any) string {
	s := cellString(v)
	if s == "" {
		return ""
	}
	if out, _, err := transform.String(westernDigits, s); err == nil {
		s = out
	}
	// strings.Fields treats NBSP and other Unicode spaces as separators.
	return strings.Join(strings.Fields(s), " ")
}

func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(x)
	}
	return fmt.Sprint(v)
}

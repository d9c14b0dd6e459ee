// Package money implements parsing and rendering of Vietnamese đồng amounts,
// including the colloquial shorthand multipliers used in everyday writing
// ("30k", "2 củ", "5 lít").
package money

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// marker is a shorthand multiplier suffix. Markers are matched longest-first
// so "triệu" is never misread as "tr".
type marker struct {
	text       string
	multiplier int64
}

var markers = []marker{
	{"triệu", 1_000_000},
	{"củ", 1_000_000},
	{"tr", 1_000_000},
	{"lít", 100},
	{"k", 1_000},
}

// amountCap is one quadrillion đồng, far above any plausible amount and
// comfortably inside the int64 range.
var amountCap = decimal.New(1, 15)

// ParseAmount parses a Vietnamese money expression into whole đồng.
//
// Digits before the first recognized marker form the integer part; digits
// immediately after it are read as a sub-unit decimal tail, so "1k5" is
// 1.5 nghìn = 1500 and "2k500" is 2.5 nghìn = 2500. Everything that is
// neither a digit nor a marker is ignored. An expression without digits
// parses to 0; the caller decides whether 0 is acceptable.
func ParseAmount(expression string) int64 {
	expr := strings.ToLower(expression)
	runes := []rune(expr)

	var intPart, fracPart strings.Builder
	var multiplier int64
	seenMarker := false

scan:
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if unicode.IsDigit(r) {
			if seenMarker {
				fracPart.WriteRune(r)
			} else {
				intPart.WriteRune(r)
			}
			continue
		}

		if seenMarker {
			// The fractional tail ends at the first non-digit.
			if fracPart.Len() > 0 {
				break scan
			}
			continue
		}

		for _, m := range markers {
			if matchMarker(runes, i, m.text) {
				multiplier = m.multiplier
				seenMarker = true
				i += len([]rune(m.text)) - 1
				continue scan
			}
		}
	}

	if intPart.Len() == 0 && fracPart.Len() == 0 {
		return 0
	}

	digits := intPart.String()
	if digits == "" {
		digits = "0"
	}
	value, err := decimal.NewFromString(digits)
	if err != nil {
		return 0
	}

	if frac := fracPart.String(); frac != "" && multiplier > 0 {
		tail, err := decimal.NewFromString("0." + frac)
		if err == nil {
			value = value.Add(tail)
		}
	}

	if multiplier > 0 {
		value = value.Mul(decimal.NewFromInt(multiplier))
	}

	// IntPart is undefined past the int64 range, so absurd magnitudes
	// parse to 0 like any other unusable expression.
	if value.Cmp(amountCap) > 0 {
		return 0
	}

	return value.Round(0).IntPart()
}

// matchMarker reports whether the marker text starts at position i. Bare
// ASCII markers ("k", "tr") only count when not part of a longer word, so
// "trà" or "karaoke" in surrounding text never register as multipliers.
func matchMarker(runes []rune, i int, text string) bool {
	mr := []rune(text)
	if i+len(mr) > len(runes) {
		return false
	}
	for j, r := range mr {
		if runes[i+j] != r {
			return false
		}
	}
	if next := i + len(mr); next < len(runes) && unicode.IsLetter(runes[next]) {
		return false
	}
	return true
}

package money

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		expression string
		want       int64
	}{
		{name: "plain digits", expression: "50000", want: 50000},
		{name: "k shorthand", expression: "30k", want: 30000},
		{name: "uppercase K", expression: "30K", want: 30000},
		{name: "compound k with sub-unit digit", expression: "1k5", want: 1500},
		{name: "cu shorthand", expression: "2 củ", want: 2000000},
		{name: "lit shorthand", expression: "5 lít", want: 500},
		{name: "empty string", expression: "", want: 0},
		{name: "no digits", expression: "ăn sáng", want: 0},
		{name: "trieu shorthand", expression: "15 triệu", want: 15000000},
		{name: "tr shorthand", expression: "2tr", want: 2000000},
		{name: "compound tr with sub-unit digit", expression: "1tr5", want: 1500000},
		{name: "compound cu with sub-unit digit", expression: "2 củ 5", want: 2500000},
		{name: "multi-digit sub-unit tail", expression: "2k500", want: 2500},
		{name: "thousand separators without marker", expression: "50.000", want: 50000},
		{name: "comma separators without marker", expression: "1,500,000", want: 1500000},
		{name: "currency suffix ignored", expression: "30k đ", want: 30000},
		{name: "marker inside word is not a multiplier", expression: "karaoke 200", want: 200},
		{name: "bare marker without digits", expression: "k5", want: 500},
		{name: "whitespace around marker", expression: " 7 k ", want: 7000},
		{name: "absurd magnitude parses to zero", expression: "999999999999999999999", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ParseAmount(tt.expression))
		})
	}
}

func TestParseAmountFirstMarkerWins(t *testing.T) {
	t.Parallel()

	// Only the first recognized marker scales the value; later markers are
	// ignored rather than compounded.
	require.Equal(t, int64(2000), ParseAmount("2k tr"))
}

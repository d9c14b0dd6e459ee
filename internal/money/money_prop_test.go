package money

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestParseAmountProperties(t *testing.T) {
	t.Parallel()

	t.Run("plain digit strings parse to their value", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			n := rapid.Int64Range(0, 1_000_000_000).Draw(t, "n")
			if got := ParseAmount(strconv.FormatInt(n, 10)); got != n {
				t.Fatalf("ParseAmount(%d) = %d", n, got)
			}
		})
	})

	t.Run("k suffix multiplies by one thousand", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			n := rapid.Int64Range(0, 1_000_000).Draw(t, "n")
			expr := strconv.FormatInt(n, 10) + "k"
			if got := ParseAmount(expr); got != n*1000 {
				t.Fatalf("ParseAmount(%q) = %d, want %d", expr, got, n*1000)
			}
		})
	})

	t.Run("never negative", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			expr := rapid.String().Draw(t, "expr")
			if got := ParseAmount(expr); got < 0 {
				t.Fatalf("ParseAmount(%q) = %d", expr, got)
			}
		})
	})
}

func TestToVietnameseWordsProperties(t *testing.T) {
	t.Parallel()

	t.Run("total and deterministic with đồng suffix", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			n := rapid.Int64Range(0, math.MaxInt64).Draw(t, "n")
			first := ToVietnameseWords(n)
			second := ToVietnameseWords(n)
			if first != second {
				t.Fatalf("non-deterministic render for %d", n)
			}
			if !strings.HasSuffix(first, "đồng") {
				t.Fatalf("render for %d does not end in đồng: %q", n, first)
			}
			if strings.Contains(first, "  ") {
				t.Fatalf("render for %d has doubled spaces: %q", n, first)
			}
		})
	})
}

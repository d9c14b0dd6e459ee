package money

import (
	"strconv"
	"strings"
)

var ones = [10]string{"", "một", "hai", "ba", "bốn", "năm", "sáu", "bảy", "tám", "chín"}

// chunkUnits are the base-1000 group words, least significant first. Seven
// entries cover every chunk position an int64 can produce.
var chunkUnits = []string{"", "nghìn", "triệu", "tỷ", "nghìn tỷ", "triệu tỷ", "tỷ tỷ"}

// ToVietnameseWords renders a non-negative amount of đồng in words, applying
// the standard irregular forms: "mười" for a bare ten, "lăm" for a trailing
// five after a tens digit, "mốt" for a trailing one after tens above one, and
// the linking "lẻ" when a non-leading chunk skips its tens digit.
func ToVietnameseWords(amount int64) string {
	if amount <= 0 {
		return "Không đồng"
	}

	var parts []string
	unitIndex := 0
	for amount > 0 {
		chunk := amount % 1000
		if chunk > 0 {
			// Non-leading chunks need the "không trăm"/"lẻ" filler so
			// 1005 reads "một nghìn không trăm lẻ năm", not "một nghìn năm"
			// (which a listener would hear as 1500).
			words := readThreeDigits(int(chunk), amount >= 1000)
			if chunkUnits[unitIndex] != "" {
				words += " " + chunkUnits[unitIndex]
			}
			parts = append([]string{words}, parts...)
		}
		amount /= 1000
		unitIndex++
	}

	rendered := strings.Join(parts, " ") + " đồng"
	return strings.Join(strings.Fields(rendered), " ")
}

// readThreeDigits renders a 1..999 chunk. showZeroHundred forces the
// "không trăm" filler for non-leading chunks so "1 000 005" reads
// "một triệu không trăm lẻ năm".
func readThreeDigits(n int, showZeroHundred bool) string {
	hundred := n / 100
	ten := (n % 100) / 10
	one := n % 10

	var b strings.Builder
	if hundred > 0 {
		b.WriteString(ones[hundred] + " trăm ")
	} else if showZeroHundred {
		b.WriteString("không trăm ")
	}

	switch {
	case ten == 0 && one > 0 && (hundred > 0 || showZeroHundred):
		b.WriteString("lẻ ")
	case ten == 1:
		b.WriteString("mười ")
	case ten > 1:
		b.WriteString(ones[ten] + " mươi ")
	}

	switch {
	case one == 1 && ten > 1:
		b.WriteString("mốt")
	case one == 5 && ten > 0:
		b.WriteString("lăm")
	case one > 0:
		b.WriteString(ones[one])
	}

	return strings.TrimSpace(b.String())
}

// FormatVND groups an amount with dots the way vi-VN renders numbers,
// e.g. 1500000 -> "1.500.000".
func FormatVND(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + strings.Join(groups, ".")
}

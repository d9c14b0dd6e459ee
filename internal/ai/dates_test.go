package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already normalized", input: "2024-12-05", want: "2024-12-05"},
		{name: "slash DMY", input: "05/12/2024", want: "2024-12-05"},
		{name: "dash DMY", input: "05-12-2024", want: "2024-12-05"},
		{name: "single digit day and month", input: "5/3/2024", want: "2024-03-05"},
		{name: "day month only defaults to current year", input: "05/12", want: "2025-12-05"},
		{name: "spelled out with year", input: "ngày 5 tháng 12 năm 2024", want: "2024-12-05"},
		{name: "spelled out without year", input: "ngày 5 tháng 12", want: "2025-12-05"},
		{name: "spelled out embedded in text", input: "thanh toán ngày 21 tháng 4 năm 2019", want: "2019-04-21"},
		{name: "empty", input: "", want: ""},
		{name: "null literal", input: "null", want: ""},
		{name: "garbage", input: "hôm qua gì đó", want: ""},
		{name: "impossible day", input: "32/01/2024", want: ""},
		{name: "impossible month", input: "01/13/2024", want: ""},
		{name: "slash YMD", input: "2024/12/05", want: "2024-12-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, NormalizeDate(tt.input, now))
		})
	}
}

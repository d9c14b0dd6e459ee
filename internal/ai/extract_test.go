package ai

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "bare object",
			raw:  `{"amount": 30000}`,
			want: `{"amount": 30000}`,
		},
		{
			name: "object with surrounding prose",
			raw:  "Here is the JSON you asked for:\n{\"amount\": 30000}\nHope that helps!",
			want: `{"amount": 30000}`,
		},
		{
			name: "markdown fenced object",
			raw:  "```json\n{\"amount\": 30000}\n```",
			want: `{"amount": 30000}`,
		},
		{
			name: "bare array",
			raw:  `[{"name": "Internet"}]`,
			want: `[{"name": "Internet"}]`,
		},
		{
			name: "array before object text",
			raw:  `[1, 2] trailing {"x": 1}`,
			want: `[1, 2]`,
		},
		{
			name:    "no JSON at all",
			raw:     "Xin lỗi, tôi không thể đọc được hóa đơn này.",
			wantErr: true,
		},
		{
			name:    "unterminated object",
			raw:     `{"amount": 30000`,
			wantErr: true,
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ExtractJSON(TaskParseIntent, tt.raw)
			if tt.wantErr {
				var schema *SchemaValidationError
				require.ErrorAs(t, err, &schema)
				require.Equal(t, TaskParseIntent, schema.Task)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

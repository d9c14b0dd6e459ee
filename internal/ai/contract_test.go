package ai

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestContractFor(t *testing.T) {
	t.Parallel()

	tasks := []TaskID{TaskScanReceipt, TaskParseIntent, TaskInsight, TaskDebtReminder, TaskDetectRecurring}

	for _, task := range tasks {
		c := ContractFor(task)
		require.Equal(t, task, c.Task)
		require.NotEmpty(t, c.Instruction)
		require.GreaterOrEqual(t, c.Version, 1)
		if c.PlainText {
			require.Nil(t, c.ResponseSchema)
		} else {
			require.NotNil(t, c.ResponseSchema)
		}
	}

	require.Panics(t, func() { ContractFor(TaskID("no_such_task")) })
}

func TestContractModalities(t *testing.T) {
	t.Parallel()

	require.True(t, ContractFor(TaskScanReceipt).WantsImage)
	require.False(t, ContractFor(TaskParseIntent).WantsImage)
	require.True(t, ContractFor(TaskDebtReminder).PlainText)
	require.False(t, ContractFor(TaskInsight).PlainText)
}

func TestContractAmountRules(t *testing.T) {
	t.Parallel()

	// The shorthand multiplier rules embedded in the prompts must agree
	// with the lexer: same markers, same scale factors.
	scan := ContractFor(TaskScanReceipt).Instruction
	require.Contains(t, scan, "50k = 50000")
	require.Contains(t, scan, "5 lít = 500")
	require.Contains(t, scan, "2 củ = 2000000")

	intent := ContractFor(TaskParseIntent).Instruction
	require.Contains(t, intent, `"30k" = 30000`)
	require.Contains(t, intent, `"1k5" = 1500`)
	require.Contains(t, intent, `"5 lít" = 500`)
	require.Contains(t, intent, `"2 củ" = 2000000`)
}

func TestContractDateRules(t *testing.T) {
	t.Parallel()

	instruction := ContractFor(TaskScanReceipt).Instruction
	require.Contains(t, instruction, "YYYY-MM-DD")
	require.Contains(t, instruction, "DD/MM/YYYY")
	require.Contains(t, instruction, "DD-MM-YYYY")
}

func TestContractCategoryVocabulary(t *testing.T) {
	t.Parallel()

	intentSchema := ContractFor(TaskParseIntent).ResponseSchema
	require.Equal(t, CategoryHints, intentSchema.Properties["categoryHint"].Enum)

	for _, hint := range CategoryHints {
		require.Contains(t, ContractFor(TaskParseIntent).Instruction, hint)
	}
}

func TestContractReminderBansDebtWord(t *testing.T) {
	t.Parallel()

	instruction := ContractFor(TaskDebtReminder).Instruction
	require.Contains(t, instruction, `không dùng từ "nợ"`)
}

func TestContractMinimalInstanceMandate(t *testing.T) {
	t.Parallel()

	// An unreadable receipt must still yield a minimal valid instance of
	// the schema, never free prose.
	instruction := ContractFor(TaskScanReceipt).Instruction
	require.Contains(t, instruction, `{"totalAmount": 0, "vendor": "Không xác định", "note": "Không thể đọc hóa đơn"}`)
}

func TestContractSchemaTypes(t *testing.T) {
	t.Parallel()

	require.Equal(t, genai.TypeObject, ContractFor(TaskScanReceipt).ResponseSchema.Type)
	require.Equal(t, genai.TypeObject, ContractFor(TaskParseIntent).ResponseSchema.Type)
	require.Equal(t, genai.TypeObject, ContractFor(TaskInsight).ResponseSchema.Type)
	require.Equal(t, genai.TypeArray, ContractFor(TaskDetectRecurring).ResponseSchema.Type)
}

package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedFallback() *Fallback {
	return NewFallbackAt(func() time.Time { return testNow })
}

func TestFallbackInvoice(t *testing.T) {
	t.Parallel()

	inv := fixedFallback().Invoice()
	require.Equal(t, "2025-06-15", inv.Date)
	require.Equal(t, int64(150000), inv.TotalAmount)
	require.Equal(t, "Cửa hàng Demo", inv.Vendor)
	require.Len(t, inv.Items, 1)
	require.NotEmpty(t, inv.Note)
}

func TestFallbackIntent(t *testing.T) {
	t.Parallel()

	t.Run("extracts digits-k shorthand", func(t *testing.T) {
		t.Parallel()
		intent := fixedFallback().Intent("Ăn sáng 30k")
		require.Equal(t, int64(30000), intent.Amount)
		require.Equal(t, TypeExpense, intent.Type)
		require.Equal(t, "other", intent.CategoryHint)
		require.Equal(t, "Ăn sáng 30k", intent.Note, "note echoes input verbatim")
		require.Empty(t, intent.Date)
	})

	t.Run("no shorthand means zero amount", func(t *testing.T) {
		t.Parallel()
		intent := fixedFallback().Intent("mua rau ngoài chợ")
		require.Zero(t, intent.Amount)
		require.Equal(t, TypeExpense, intent.Type)
		require.Equal(t, "other", intent.CategoryHint)
	})
}

func TestFallbackInsight(t *testing.T) {
	t.Parallel()

	insight := fixedFallback().Insight()
	require.Len(t, insight.Insights, 3)
	require.NotNil(t, insight.OverallScore)
	require.Equal(t, 65, *insight.OverallScore)
	require.Equal(t, "food", insight.TopCategory)

	guidance := fixedFallback().GuidanceInsight()
	require.Len(t, guidance.Insights, 3)
	require.Nil(t, guidance.OverallScore)
	require.Empty(t, guidance.TopCategory)
}

func TestFallbackDebtReminder(t *testing.T) {
	t.Parallel()

	msg := fixedFallback().DebtReminder("Nam", 50000)
	require.Contains(t, msg, "Nam")
	require.Contains(t, msg, "50.000")
	require.NotContains(t, msg, "nợ")

	// The template itself must satisfy the reminder contract.
	validated, err := DecodeReminder(msg)
	require.NoError(t, err)
	require.NotEmpty(t, validated)
}

func TestFallbackRecurring(t *testing.T) {
	t.Parallel()

	candidates := fixedFallback().Recurring()
	require.NotNil(t, candidates)
	require.Empty(t, candidates)
}

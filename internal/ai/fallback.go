package ai

import (
	"fmt"
	"regexp"
	"time"

	"gitlab.com/phantrg/vitien-ai/internal/money"
)

// shorthandAmount approximates the amount in a phrase when no generator is
// available: a bare "<digits>k" pattern, nothing fancier.
var shorthandAmount = regexp.MustCompile(`(?i)(\d+)\s*k`)

// Fallback produces deterministic, schema-valid stand-in results for every
// task, used whenever no credential is configured or the live path fails.
// The AI layer must never be a hard dependency for basic app usability.
type Fallback struct {
	now func() time.Time
}

// NewFallback creates a fallback provider using the wall clock.
func NewFallback() *Fallback {
	return &Fallback{now: time.Now}
}

// NewFallbackAt creates a fallback provider with a fixed clock, for tests.
func NewFallbackAt(now func() time.Time) *Fallback {
	return &Fallback{now: now}
}

// Invoice returns the demo receipt extraction.
func (f *Fallback) Invoice() *InvoiceExtraction {
	return &InvoiceExtraction{
		Date:        f.now().Format("2006-01-02"),
		TotalAmount: 150000,
		Vendor:      "Cửa hàng Demo",
		Items: []InvoiceItem{
			{Name: "Sản phẩm mẫu", Quantity: 1, UnitPrice: 150000},
		},
		Note: "Dữ liệu demo - Chưa có API Key",
	}
}

// Intent approximates a transaction from a phrase. The note echoes the
// input verbatim since no generator summarized it.
func (f *Fallback) Intent(text string) *TransactionIntent {
	var amount int64
	if m := shorthandAmount.FindStringSubmatch(text); m != nil {
		amount = money.ParseAmount(m[0])
	}

	return &TransactionIntent{
		Amount:       amount,
		Type:         TypeExpense,
		CategoryHint: "other",
		Note:         text,
	}
}

// Insight returns the fixed advisory set used when generation fails.
func (f *Fallback) Insight() *FinancialInsight {
	score := 65
	return &FinancialInsight{
		Insights: []string{
			"📊 Chi tiêu ăn uống đang chiếm tỉ lệ lớn, cân nhắc nấu ăn tại nhà nhé!",
			"💰 Có khoản dư cuối tháng, có thể trích 10% để đầu tư hoặc tiết kiệm.",
			"📅 Đừng quên các khoản định kỳ như điện, nước sắp đến hạn!",
		},
		OverallScore: &score,
		TopCategory:  "food",
	}
}

// GuidanceInsight is the static message set returned when the caller has
// too few transactions to analyze. No score, no top category: there is
// nothing to grade yet.
func (f *Fallback) GuidanceInsight() *FinancialInsight {
	return &FinancialInsight{
		Insights: []string{
			"Hãy nhập thêm giao dịch để AI có thể phân tích chính xác hơn.",
			"Cập nhật API Key trong cài đặt để kích hoạt trí tuệ nhân tạo.",
			"Ghi chép chi tiêu hàng ngày là thói quen tốt.",
		},
	}
}

// DebtReminder returns a tactful reminder template. Per contract it names
// the amount without the literal word for debt.
func (f *Fallback) DebtReminder(name string, amount int64) string {
	return fmt.Sprintf(
		`%s ơi, khoản %sđ hôm trước đến lúc "về nhà" rồi đó! Có gì chuyển qua MoMo cho tiện nha 😄`,
		name, money.FormatVND(amount),
	)
}

// Recurring returns an empty candidate list: without a generator there is
// no pattern detection, and an empty slice is the schema-valid answer.
func (f *Fallback) Recurring() []RecurringCandidate {
	return []RecurringCandidate{}
}

// Package ai turns unstructured Vietnamese financial input into validated,
// typed transaction data via a generative oracle, with a deterministic
// fallback path so the rest of the app never blocks on AI availability.
package ai

// TransactionType classifies a transaction as money in or money out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// CategoryHints is the closed vocabulary shared by all tasks. The store layer
// reconciles these hints against the user's actual category list.
var CategoryHints = []string{
	"food", "transport", "shopping", "entertainment", "bill",
	"health", "education", "salary", "gift", "other",
}

// IsCategoryHint reports whether tag belongs to the shared vocabulary.
func IsCategoryHint(tag string) bool {
	for _, hint := range CategoryHints {
		if hint == tag {
			return true
		}
	}
	return false
}

// InvoiceItem is a single line item read off a receipt.
type InvoiceItem struct {
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity,omitempty"`
	UnitPrice int64  `json:"price,omitempty"`
}

// InvoiceExtraction is the structured result of receipt OCR. It is created
// fresh per scan and never mutated; the caller holds it until the user
// confirms and it becomes a transaction.
type InvoiceExtraction struct {
	Date        string        `json:"date,omitempty"` // YYYY-MM-DD, empty when not found
	TotalAmount int64         `json:"totalAmount"`
	Vendor      string        `json:"vendor"`
	Items       []InvoiceItem `json:"items,omitempty"`
	Note        string        `json:"note,omitempty"`
	RawText     string        `json:"rawText,omitempty"`
}

// TransactionIntent is the structured result of parsing a free-text phrase
// like "Ăn sáng 30k". Date stays empty when the phrase does not mention one;
// defaulting to today is the caller's convention, not the parser's.
type TransactionIntent struct {
	Amount       int64           `json:"amount"`
	Type         TransactionType `json:"type"`
	CategoryHint string          `json:"categoryHint"`
	Note         string          `json:"note"`
	Date         string          `json:"date,omitempty"`
}

// FinancialInsight holds 1-3 short advisory strings generated from a
// transaction summary, with an optional health score and top category.
type FinancialInsight struct {
	Insights     []string `json:"insights"`
	OverallScore *int     `json:"overallScore,omitempty"` // 0-100, nil when absent
	TopCategory  string   `json:"topCategory,omitempty"`
}

// Transaction is the caller-supplied shape of a historical transaction,
// summarized for the insight and recurring-detection tasks.
type Transaction struct {
	Amount   int64           `json:"amount"`
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
	Note     string          `json:"note"`
	Date     string          `json:"date"`
}

// RecurringCandidate is a charge that looks periodic in the user's history.
type RecurringCandidate struct {
	Name         string `json:"name"`
	Amount       int64  `json:"amount"`
	Frequency    string `json:"frequency"` // "monthly" or "weekly"
	CategoryHint string `json:"categoryHint,omitempty"`
}

// Source records which path produced a result.
type Source int

const (
	// SourceLive means the generative oracle produced the result.
	SourceLive Source = iota
	// SourceFallback means the deterministic fallback provider produced it.
	SourceFallback
	// SourceStatic means a precondition guard returned fixed guidance
	// without consulting either path.
	SourceStatic
)

func (s Source) String() string {
	switch s {
	case SourceLive:
		return "live"
	case SourceFallback:
		return "fallback"
	case SourceStatic:
		return "static"
	default:
		return "unknown"
	}
}

package ai

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	plainInt   = regexp.MustCompile(`^-?\d+$`)
	groupedInt = regexp.MustCompile(`^-?\d{1,3}(?:[.,]\d{3})+$`)
)

// flexInt decodes a JSON value that a model may emit either as a number or
// as a numeric string ("150000", "150.000", 150000.0). Thousand separators
// are stripped; fractional values round to the nearest whole đồng.
type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}

	s = strings.NewReplacer(" ", "", "đ", "", "₫", "").Replace(s)

	if plainInt.MatchString(s) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		*f = flexInt(n)
		return nil
	}

	// "150.000" and "150,000" are thousand groupings, not decimals.
	if groupedInt.MatchString(s) {
		n, err := strconv.ParseInt(strings.NewReplacer(".", "", ",", "").Replace(s), 10, 64)
		if err != nil {
			return err
		}
		*f = flexInt(n)
		return nil
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return err
	}
	if v >= 0 {
		*f = flexInt(v + 0.5)
	} else {
		*f = flexInt(v - 0.5)
	}
	return nil
}

// DecodeInvoice parses and validates raw model output for the receipt task.
func DecodeInvoice(raw string, now time.Time) (*InvoiceExtraction, error) {
	payload, err := ExtractJSON(TaskScanReceipt, raw)
	if err != nil {
		return nil, err
	}

	var wire struct {
		Date        string  `json:"date"`
		TotalAmount flexInt `json:"totalAmount"`
		Vendor      string  `json:"vendor"`
		Items       []struct {
			Name     string  `json:"name"`
			Quantity flexInt `json:"quantity"`
			Price    flexInt `json:"price"`
		} `json:"items"`
		Note    string `json:"note"`
		RawText string `json:"rawText"`
	}
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return nil, &SchemaValidationError{Task: TaskScanReceipt, Reason: err.Error()}
	}

	if wire.TotalAmount < 0 {
		return nil, &SchemaValidationError{Task: TaskScanReceipt, Reason: "negative totalAmount"}
	}

	inv := &InvoiceExtraction{
		Date:        NormalizeDate(wire.Date, now),
		TotalAmount: int64(wire.TotalAmount),
		Vendor:      strings.TrimSpace(wire.Vendor),
		Note:        strings.TrimSpace(wire.Note),
		RawText:     wire.RawText,
	}
	if inv.Vendor == "" {
		inv.Vendor = "Không xác định"
	}

	for _, item := range wire.Items {
		name := strings.TrimSpace(item.Name)
		if name == "" || item.Quantity < 0 || item.Price < 0 {
			continue
		}
		inv.Items = append(inv.Items, InvoiceItem{
			Name:      name,
			Quantity:  int64(item.Quantity),
			UnitPrice: int64(item.Price),
		})
	}

	return inv, nil
}

// DecodeIntent parses and validates raw model output for the phrase task.
func DecodeIntent(raw string, now time.Time) (*TransactionIntent, error) {
	payload, err := ExtractJSON(TaskParseIntent, raw)
	if err != nil {
		return nil, err
	}

	var wire struct {
		Amount       flexInt `json:"amount"`
		Type         string  `json:"type"`
		CategoryHint string  `json:"categoryHint"`
		Note         string  `json:"note"`
		Date         string  `json:"date"`
	}
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return nil, &SchemaValidationError{Task: TaskParseIntent, Reason: err.Error()}
	}

	if wire.Amount < 0 {
		return nil, &SchemaValidationError{Task: TaskParseIntent, Reason: "negative amount"}
	}

	txType := TransactionType(strings.ToLower(strings.TrimSpace(wire.Type)))
	if txType != TypeIncome && txType != TypeExpense {
		return nil, &SchemaValidationError{Task: TaskParseIntent, Reason: "type must be income or expense, got " + strconv.Quote(wire.Type)}
	}

	hint := strings.ToLower(strings.TrimSpace(wire.CategoryHint))
	if !IsCategoryHint(hint) {
		hint = "other"
	}

	return &TransactionIntent{
		Amount:       int64(wire.Amount),
		Type:         txType,
		CategoryHint: hint,
		Note:         strings.Join(strings.Fields(wire.Note), " "),
		Date:         NormalizeDate(wire.Date, now),
	}, nil
}

// maxInsights bounds the advisory list per contract.
const maxInsights = 3

// DecodeInsight parses and validates raw model output for the insight task.
// Out-of-range extras are clamped rather than rejected: surplus insights are
// truncated, an out-of-range score becomes absent, an unknown top category
// maps to "other".
func DecodeInsight(raw string) (*FinancialInsight, error) {
	payload, err := ExtractJSON(TaskInsight, raw)
	if err != nil {
		return nil, err
	}

	var wire struct {
		Insights     []string `json:"insights"`
		OverallScore *flexInt `json:"overallScore"`
		TopCategory  string   `json:"topCategory"`
	}
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return nil, &SchemaValidationError{Task: TaskInsight, Reason: err.Error()}
	}

	result := &FinancialInsight{}
	for _, s := range wire.Insights {
		s = strings.Join(strings.Fields(s), " ")
		if s == "" {
			continue
		}
		result.Insights = append(result.Insights, s)
		if len(result.Insights) == maxInsights {
			break
		}
	}
	if len(result.Insights) == 0 {
		return nil, &SchemaValidationError{Task: TaskInsight, Reason: "no insights in response"}
	}

	if wire.OverallScore != nil {
		score := int(*wire.OverallScore)
		if score >= 0 && score <= 100 {
			result.OverallScore = &score
		}
	}

	top := strings.ToLower(strings.TrimSpace(wire.TopCategory))
	if top != "" {
		if !IsCategoryHint(top) {
			top = "other"
		}
		result.TopCategory = top
	}

	return result, nil
}

// DecodeRecurring parses and validates raw model output for the
// recurring-detection task. Malformed entries are dropped, not fatal.
func DecodeRecurring(raw string) ([]RecurringCandidate, error) {
	payload, err := ExtractJSON(TaskDetectRecurring, raw)
	if err != nil {
		return nil, err
	}

	var wire []struct {
		Name         string  `json:"name"`
		Amount       flexInt `json:"amount"`
		Frequency    string  `json:"frequency"`
		CategoryHint string  `json:"categoryHint"`
	}
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return nil, &SchemaValidationError{Task: TaskDetectRecurring, Reason: err.Error()}
	}

	candidates := []RecurringCandidate{}
	for _, w := range wire {
		name := strings.TrimSpace(w.Name)
		freq := strings.ToLower(strings.TrimSpace(w.Frequency))
		if name == "" || w.Amount <= 0 || (freq != "monthly" && freq != "weekly") {
			continue
		}
		hint := strings.ToLower(strings.TrimSpace(w.CategoryHint))
		if !IsCategoryHint(hint) {
			hint = "other"
		}
		candidates = append(candidates, RecurringCandidate{
			Name:         name,
			Amount:       int64(w.Amount),
			Frequency:    freq,
			CategoryHint: hint,
		})
	}

	return candidates, nil
}

// DecodeReminder validates the plain-text debt reminder. The contract bans
// the literal word for debt to preserve social tact; output violating it is
// treated like any other schema violation.
func DecodeReminder(raw string) (string, error) {
	msg := strings.TrimSpace(raw)
	msg = strings.Trim(msg, `"`)
	msg = strings.Join(strings.Fields(msg), " ")

	if msg == "" {
		return "", &SchemaValidationError{Task: TaskDebtReminder, Reason: "empty message"}
	}
	if strings.Contains(strings.ToLower(msg), "nợ") {
		return "", &SchemaValidationError{Task: TaskDebtReminder, Reason: "message mentions debt directly"}
	}

	return msg, nil
}

package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gitlab.com/phantrg/vitien-ai/internal/logger"
	"gitlab.com/phantrg/vitien-ai/internal/money"
	"gitlab.com/phantrg/vitien-ai/internal/telemetry"
)

// MinInsightTransactions is the minimum history volume before the insight
// task consults the oracle. Below it a static guidance set is returned;
// this is a cost/quality guard, not a correctness requirement.
const MinInsightTransactions = 3

// MinRecurringTransactions is the equivalent guard for recurring detection.
const MinRecurringTransactions = 5

// summaryWindow caps how much history is embedded in an insight prompt.
const summaryWindow = 20

// Credential carries the two possible key sources, resolved by the settings
// layer and injected per call. The user override takes priority.
type Credential struct {
	UserKey    string
	DefaultKey string
}

// Resolve returns the effective key, or false when neither source is usable.
func (c Credential) Resolve() (string, bool) {
	if c.UserKey != "" {
		return c.UserKey, true
	}
	if c.DefaultKey != "" {
		return c.DefaultKey, true
	}
	return "", false
}

// GeneratorFactory builds a generation client for a resolved credential.
// Injected so tests can substitute a mock generator.
type GeneratorFactory func(ctx context.Context, apiKey string) (*Client, error)

// Assistant is the single entry point the rest of the app calls. It holds
// no per-call state: every invocation is independent, results are owned by
// the caller, and concurrent calls share nothing.
type Assistant struct {
	model    string
	factory  GeneratorFactory
	fallback *Fallback
	now      func() time.Time
}

// NewAssistant creates an assistant that talks to the Gemini API.
func NewAssistant(model string) *Assistant {
	return NewAssistantWithFactory(model, func(ctx context.Context, apiKey string) (*Client, error) {
		return NewClient(ctx, apiKey, model)
	})
}

// NewAssistantWithFactory creates an assistant with a custom client factory,
// primarily for tests.
func NewAssistantWithFactory(model string, factory GeneratorFactory) *Assistant {
	return &Assistant{
		model:    model,
		factory:  factory,
		fallback: NewFallback(),
		now:      time.Now,
	}
}

// callOracle resolves the credential, builds a client and performs a single
// generation attempt. ErrNoCredential comes back untouched so callers can
// route to fallback silently; everything else is a typed soft failure.
func (a *Assistant) callOracle(ctx context.Context, cred Credential, task TaskID, payload Payload) (string, error) {
	key, ok := cred.Resolve()
	if !ok {
		return "", ErrNoCredential
	}

	client, err := a.factory(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNoCredential) {
			return "", ErrNoCredential
		}
		return "", &TransportError{Cause: err}
	}

	ctx, span := telemetry.Tracer().Start(ctx, "ai."+string(task))
	defer span.End()

	return client.Invoke(ctx, ContractFor(task), payload)
}

// fellBack logs and counts one fallback routing and returns the notice the
// caller should surface. A nil cause (no credential, precondition guard)
// stays silent.
func (a *Assistant) fellBack(ctx context.Context, task TaskID, cause error) error {
	telemetry.CountFallback(ctx, string(task))

	if cause == nil || errors.Is(cause, ErrNoCredential) {
		logger.Log.Debug().Str("task", string(task)).Msg("AI routed to fallback without credential")
		return nil
	}

	var precondition *PreconditionError
	if errors.As(cause, &precondition) {
		logger.Log.Debug().Str("task", string(task)).Str("reason", precondition.Reason).
			Msg("AI call skipped on input precondition")
		return cause
	}

	logger.Log.Warn().Err(cause).Str("task", string(task)).Msg("AI call failed, using fallback")
	return cause
}

// ScanReceipt extracts payment data from a receipt, transfer slip or
// e-wallet screenshot. The result is always schema-valid; the error return
// is a soft notice, never a hard failure.
func (a *Assistant) ScanReceipt(ctx context.Context, cred Credential, image []byte, mimeType string) (*InvoiceExtraction, Source, error) {
	if len(image) == 0 {
		notice := a.fellBack(ctx, TaskScanReceipt, &PreconditionError{Reason: "empty image"})
		return a.fallback.Invoice(), SourceFallback, notice
	}

	raw, err := a.callOracle(ctx, cred, TaskScanReceipt, Payload{Image: image, ImageMIME: mimeType})
	if err != nil {
		notice := a.fellBack(ctx, TaskScanReceipt, err)
		return a.fallback.Invoice(), SourceFallback, notice
	}

	invoice, err := DecodeInvoice(raw, a.now())
	if err != nil {
		notice := a.fellBack(ctx, TaskScanReceipt, err)
		return a.fallback.Invoice(), SourceFallback, notice
	}

	logger.Log.Info().Str("vendor_hash", logger.HashText(invoice.Vendor)).
		Int64("total", invoice.TotalAmount).Msg("Receipt scanned")
	return invoice, SourceLive, nil
}

// ParsePhrase turns a free-text phrase like "Ăn sáng 30k" into a
// transaction intent. Defaulting an absent date to today is left to the
// caller by convention.
func (a *Assistant) ParsePhrase(ctx context.Context, cred Credential, text string) (*TransactionIntent, Source, error) {
	sanitized := SanitizeForPrompt(text, MaxPhraseLength)
	if sanitized == "" {
		notice := a.fellBack(ctx, TaskParseIntent, &PreconditionError{Reason: "empty phrase"})
		return a.fallback.Intent(text), SourceFallback, notice
	}

	prompt := fmt.Sprintf("Input từ người dùng: \"%s\"", sanitized)
	raw, err := a.callOracle(ctx, cred, TaskParseIntent, Payload{Text: prompt})
	if err != nil {
		notice := a.fellBack(ctx, TaskParseIntent, err)
		return a.fallback.Intent(text), SourceFallback, notice
	}

	intent, err := DecodeIntent(raw, a.now())
	if err != nil {
		notice := a.fellBack(ctx, TaskParseIntent, err)
		return a.fallback.Intent(text), SourceFallback, notice
	}

	logger.Log.Info().Str("phrase_hash", logger.HashText(text)).
		Int64("amount", intent.Amount).Str("type", string(intent.Type)).Msg("Phrase parsed")
	return intent, SourceLive, nil
}

// GenerateInsight produces 1-3 short advisory strings from recent history.
// With fewer than MinInsightTransactions entries the oracle is never
// consulted and fixed guidance comes back instead.
func (a *Assistant) GenerateInsight(ctx context.Context, cred Credential, transactions []Transaction) (*FinancialInsight, Source, error) {
	if len(transactions) < MinInsightTransactions {
		logger.Log.Debug().Int("count", len(transactions)).Msg("Too few transactions for insight")
		return a.fallback.GuidanceInsight(), SourceStatic, nil
	}

	window := transactions
	if len(window) > summaryWindow {
		window = window[len(window)-summaryWindow:]
	}
	summary, err := json.Marshal(window)
	if err != nil {
		notice := a.fellBack(ctx, TaskInsight, &PreconditionError{Reason: "unserializable transactions"})
		return a.fallback.Insight(), SourceFallback, notice
	}

	prompt := "Dữ liệu tài chính của người dùng:\n" + string(summary)
	raw, err := a.callOracle(ctx, cred, TaskInsight, Payload{Text: prompt})
	if err != nil {
		notice := a.fellBack(ctx, TaskInsight, err)
		return a.fallback.Insight(), SourceFallback, notice
	}

	insight, err := DecodeInsight(raw)
	if err != nil {
		notice := a.fellBack(ctx, TaskInsight, err)
		return a.fallback.Insight(), SourceFallback, notice
	}

	return insight, SourceLive, nil
}

// GenerateDebtReminder writes a tactful 1-3 sentence payment reminder for
// a person and amount. The reason is optional.
func (a *Assistant) GenerateDebtReminder(ctx context.Context, cred Credential, name string, amount int64, reason string) (string, Source, error) {
	name = SanitizeForPrompt(name, MaxNameLength)
	var precondition error
	if name == "" {
		name = "Bạn"
		precondition = &PreconditionError{Reason: "empty debtor name"}
	}
	if amount <= 0 {
		precondition = &PreconditionError{Reason: "non-positive amount"}
	}
	if precondition != nil {
		notice := a.fellBack(ctx, TaskDebtReminder, precondition)
		return a.fallback.DebtReminder(name, amount), SourceFallback, notice
	}

	if reason == "" {
		reason = "giao dịch cá nhân"
	}

	prompt := fmt.Sprintf(
		"Thông tin:\n- Tên người cần nhắc: %s\n- Số tiền: %s VNĐ\n- Lý do: %s\n\nViết tin nhắn nhắc khéo:",
		name, money.FormatVND(amount), SanitizeForPrompt(reason, MaxPhraseLength),
	)
	raw, err := a.callOracle(ctx, cred, TaskDebtReminder, Payload{Text: prompt})
	if err != nil {
		notice := a.fellBack(ctx, TaskDebtReminder, err)
		return a.fallback.DebtReminder(name, amount), SourceFallback, notice
	}

	message, err := DecodeReminder(raw)
	if err != nil {
		notice := a.fellBack(ctx, TaskDebtReminder, err)
		return a.fallback.DebtReminder(name, amount), SourceFallback, notice
	}

	return message, SourceLive, nil
}

// DetectRecurring scans history for charges that repeat weekly or monthly.
// An empty slice is the schema-valid "nothing found" answer on every path.
func (a *Assistant) DetectRecurring(ctx context.Context, cred Credential, transactions []Transaction) ([]RecurringCandidate, Source, error) {
	if len(transactions) < MinRecurringTransactions {
		return []RecurringCandidate{}, SourceStatic, nil
	}

	summary, err := json.Marshal(transactions)
	if err != nil {
		notice := a.fellBack(ctx, TaskDetectRecurring, &PreconditionError{Reason: "unserializable transactions"})
		return a.fallback.Recurring(), SourceFallback, notice
	}

	prompt := "Lịch sử giao dịch:\n" + string(summary)
	raw, err := a.callOracle(ctx, cred, TaskDetectRecurring, Payload{Text: prompt})
	if err != nil {
		notice := a.fellBack(ctx, TaskDetectRecurring, err)
		return a.fallback.Recurring(), SourceFallback, notice
	}

	candidates, err := DecodeRecurring(raw)
	if err != nil {
		notice := a.fellBack(ctx, TaskDetectRecurring, err)
		return a.fallback.Recurring(), SourceFallback, notice
	}

	return candidates, SourceLive, nil
}

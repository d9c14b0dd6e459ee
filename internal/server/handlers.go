package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"gitlab.com/phantrg/vitien-ai/internal/ai"
	"gitlab.com/phantrg/vitien-ai/internal/money"
)

// envelope is the uniform response shape of the action boundary. Notice
// carries the soft "fallback used" signal without failing the request.
type envelope struct {
	Data     any    `json:"data,omitempty"`
	Error    string `json:"error,omitempty"`
	Source   string `json:"source,omitempty"`
	Fallback bool   `json:"fallback"`
	Notice   string `json:"notice,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeResult(w http.ResponseWriter, data any, source ai.Source, notice error) {
	env := envelope{
		Data:     data,
		Source:   source.String(),
		Fallback: source != ai.SourceLive,
	}
	if notice != nil {
		env.Notice = notice.Error()
	}
	writeJSON(w, http.StatusOK, env)
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, envelope{Error: msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) handleScanReceipt(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Image    string `json:"image"` // base64, as uploaded by the dashboard
		MimeType string `json:"mimeType"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	image, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		writeBadRequest(w, "image must be base64 encoded")
		return
	}

	invoice, source, notice := s.assistant.ScanReceipt(r.Context(), s.credential(r), image, req.MimeType)
	writeResult(w, invoice, source, notice)
}

func (s *Server) handleParseIntent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	intent, source, notice := s.assistant.ParsePhrase(r.Context(), s.credential(r), req.Text)
	writeResult(w, intent, source, notice)
}

func (s *Server) handleInsight(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Transactions []ai.Transaction `json:"transactions"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	insight, source, notice := s.assistant.GenerateInsight(r.Context(), s.credential(r), req.Transactions)
	writeResult(w, insight, source, notice)
}

func (s *Server) handleDebtReminder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string `json:"name"`
		Amount int64  `json:"amount"`
		Reason string `json:"reason"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	message, source, notice := s.assistant.GenerateDebtReminder(r.Context(), s.credential(r), req.Name, req.Amount, req.Reason)
	writeResult(w, map[string]string{"message": message}, source, notice)
}

func (s *Server) handleRecurring(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Transactions []ai.Transaction `json:"transactions"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	candidates, source, notice := s.assistant.DetectRecurring(r.Context(), s.credential(r), req.Transactions)
	writeResult(w, candidates, source, notice)
}

// handleParseAmount serves the on-screen amount confirmation: shorthand in,
// whole đồng plus words out. Purely local, no AI involved.
func (s *Server) handleParseAmount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Expression string `json:"expression"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	amount := money.ParseAmount(req.Expression)
	writeJSON(w, http.StatusOK, envelope{
		Data: map[string]any{
			"amount":    amount,
			"formatted": money.FormatVND(amount),
			"words":     money.ToVietnameseWords(amount),
		},
		Source: "local",
	})
}

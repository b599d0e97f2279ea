// internal/app/features/download/handler.go
package download

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/robinaudi/deckhub/internal/app/system/auth"
	"github.com/robinaudi/deckhub/internal/app/system/timeouts"
)

// Handler exposes the gate over HTTP.
type Handler struct {
	Gate *Gate
	Log  *zap.Logger
}

// NewHandler constructs a download Handler.
func NewHandler(gate *Gate, logger *zap.Logger) *Handler {
	return &Handler{Gate: gate, Log: logger}
}

// downloadRequest is the POST body from the survey modal.
type downloadRequest struct {
	Source    string `json:"source"`
	OtherText string `json:"otherText"`
}

// errorResponse is the JSON error shape for gate refusals.
type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	SignInURL string `json:"signInUrl,omitempty"`
}

// ServeOptions handles GET /api/download/options: the survey choices the
// modal renders.
func (h *Handler) ServeOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(SourceOptions)
}

// ServeDownload handles POST /api/download. A passing gate streams the PDF;
// refusals map to JSON errors by step.
func (h *Handler) ServeDownload(w http.ResponseWriter, r *http.Request) {
	var body downloadRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Invalid request body.")
		return
	}

	req := Request{
		SourceKey: body.Source,
		OtherText: body.OtherText,
		UserAgent: r.UserAgent(),
	}
	if u, ok := auth.CurrentUser(r); ok {
		req.User = u
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Export())
	defer cancel()

	artifact, err := h.Gate.Run(ctx, req)
	if err != nil {
		h.respondGateError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.Header().Set("Content-Length", fmt.Sprint(len(artifact.Data)))
	_, _ = w.Write(artifact.Data)
}

func (h *Handler) respondGateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		writeError(w, http.StatusBadRequest, "validation", "請選擇下載來源。")
	case errors.Is(err, ErrModeClosed):
		writeError(w, http.StatusForbidden, "closed", "下載功能目前已關閉。")
	case errors.Is(err, ErrAuthFailed):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(errorResponse{
			Error:     "請先登入後再下載。",
			Code:      "auth_required",
			SignInURL: "/auth/google",
		})
	case errors.Is(err, ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, "rate_limited", "每個帳號每天限下載一次，請明天再試。")
	default:
		h.Log.Error("download gate failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "export_failed", "PDF 匯出失敗，請稍後再試。")
	}
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg, Code: code})
}

// sessionOnlyIdentity is the gate's identity provider in the HTTP surface.
// A server handler cannot open a sign-in popup mid-request; both paths
// refuse, which the handler maps to a 401 challenge so the browser runs the
// OAuth flow and retries.
type sessionOnlyIdentity struct{}

// NewSessionOnlyIdentity returns the provider used by the HTTP wiring.
func NewSessionOnlyIdentity() IdentityProvider { return sessionOnlyIdentity{} }

func (sessionOnlyIdentity) SignInInteractive(context.Context) (*auth.SessionUser, error) {
	return nil, errors.New("no session identity")
}

func (sessionOnlyIdentity) SignInRedirect(context.Context) (*auth.SessionUser, error) {
	return nil, errors.New("no session identity")
}

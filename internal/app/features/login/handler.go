// internal/app/features/login/handler.go

// Package login serves the sign-in page. Visitors normally use the Google
// button; the password form is a break-glass path for the deck owner when
// OAuth is unavailable, backed by a single bcrypt hash from config.
package login

import (
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/robinaudi/deckhub/internal/app/system/auth"
	"github.com/robinaudi/deckhub/internal/app/system/ratelimit"
)

// loginLimit throttles password attempts per client IP.
const (
	loginLimit       = 5
	loginLimitWindow = 15 * time.Minute
)

// Handler is the login feature handler.
type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager

	AdminEmail        string
	AdminPasswordHash string // bcrypt; empty disables the password form
	GoogleEnabled     bool

	limiter *ratelimit.Limiter
}

// NewHandler constructs a login Handler.
func NewHandler(sessionMgr *auth.SessionManager, adminEmail, adminPasswordHash string, googleEnabled bool, logger *zap.Logger) *Handler {
	return &Handler{
		Log:               logger,
		SessionMgr:        sessionMgr,
		AdminEmail:        adminEmail,
		AdminPasswordHash: adminPasswordHash,
		GoogleEnabled:     googleEnabled,
		limiter:           ratelimit.New(loginLimit, loginLimitWindow),
	}
}

// loginFormData is the view model for the sign-in page.
type loginFormData struct {
	Title           string
	Error           string
	Email           string
	ReturnURL       string
	GoogleEnabled   bool
	PasswordEnabled bool
}

// errorMessages maps the ?error= codes the OAuth flow redirects with.
var errorMessages = map[string]string{
	"google_not_configured": "Google 登入尚未設定。",
	"google_denied":         "Google 登入遭拒絕。",
	"invalid_state":         "登入流程逾時，請再試一次。",
	"invalid_code":          "登入流程發生錯誤，請再試一次。",
	"token_exchange":        "無法完成 Google 登入，請再試一次。",
	"user_info":             "無法取得 Google 帳號資訊。",
	"internal":              "伺服器發生錯誤，請稍後再試。",
}

// ServeLogin handles GET /login.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "login", loginFormData{
		Title:           "登入",
		Error:           errorMessages[query.Get(r, "error")],
		ReturnURL:       query.Get(r, "return"),
		GoogleEnabled:   h.GoogleEnabled,
		PasswordEnabled: h.AdminPasswordHash != "",
	})
}

// HandleLoginPost handles POST /login: the admin password form.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if h.AdminPasswordHash == "" {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderFormWithError(w, r, "表單資料無效。", "")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	ret := r.FormValue("return")

	ip := ratelimit.ClientIP(r)
	if !h.limiter.Allow(ip) {
		h.Log.Warn("login throttled", zap.String("ip", ip))
		h.renderFormWithError(w, r, "嘗試次數過多，請 15 分鐘後再試。", email)
		return
	}

	if !strings.EqualFold(email, h.AdminEmail) ||
		bcrypt.CompareHashAndPassword([]byte(h.AdminPasswordHash), []byte(password)) != nil {
		h.Log.Warn("login failed", zap.String("email", email), zap.String("ip", ip))
		h.renderFormWithError(w, r, "帳號或密碼錯誤。", email)
		return
	}

	h.limiter.Reset(ip)

	user := &auth.SessionUser{
		ID:       "admin",
		Name:     "Admin",
		Email:    h.AdminEmail,
		Provider: "password",
	}
	if err := h.SessionMgr.SignIn(w, r, user); err != nil {
		h.Log.Error("session write failed", zap.Error(err))
		h.renderFormWithError(w, r, "伺服器發生錯誤，請稍後再試。", email)
		return
	}

	h.Log.Info("admin sign-in", zap.String("email", h.AdminEmail), zap.String("ip", ip))

	if ret == "" || !strings.HasPrefix(ret, "/") || strings.HasPrefix(ret, "//") {
		ret = "/cms"
	}
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, email string) {
	w.WriteHeader(http.StatusUnprocessableEntity)
	templates.Render(w, r, "login", loginFormData{
		Title:           "登入",
		Error:           msg,
		Email:           email,
		ReturnURL:       r.FormValue("return"),
		GoogleEnabled:   h.GoogleEnabled,
		PasswordEnabled: true,
	})
}

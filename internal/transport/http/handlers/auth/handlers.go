package authhandler

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"hrpay/internal/domain/audit"
	"hrpay/internal/domain/auth"
	"hrpay/internal/domain/authz"
	cryptoutil "hrpay/internal/platform/crypto"
	"hrpay/internal/transport/http/api"
	"hrpay/internal/transport/http/middleware"
	"hrpay/internal/transport/http/shared"
)

type Handler struct {
	Store    *auth.Store
	Audit    *audit.Service
	Crypto   *cryptoutil.Service
	Secret   string
	TokenTTL time.Duration
	Issuer   string
}

func NewHandler(store *auth.Store, auditSvc *audit.Service, crypto *cryptoutil.Service, secret string, tokenTTL time.Duration, issuer string) *Handler {
	return &Handler{Store: store, Audit: auditSvc, Crypto: crypto, Secret: secret, TokenTTL: tokenTTL, Issuer: issuer}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.handleLogin)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/logout", h.handleLogout)
			r.Get("/me", h.handleMe)
			r.Post("/change-password", h.handleChangePassword)
			r.Post("/mfa/setup", h.handleMFASetup)
			r.Post("/mfa/enable", h.handleMFAEnable)
			r.Post("/mfa/disable", h.handleMFADisable)
		})
	})
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	MFACode  string `json:"mfaCode"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))
	if payload.Email == "" || payload.Password == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "email and password are required", reqID)
		return
	}

	user, err := h.Store.FindActiveUserByEmail(r.Context(), payload.Email)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", reqID)
		return
	}
	if err := auth.CheckPassword(user.PasswordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", reqID)
		return
	}

	if user.MFAEnabled {
		secret, err := h.mfaSecret(user.MFASecretEnc)
		if err != nil || secret == "" || !totp.Validate(payload.MFACode, secret) {
			api.Fail(w, http.StatusUnauthorized, "mfa_required", "valid MFA code required", reqID)
			return
		}
	}

	role, ok := authz.NormalizeRole(user.Role)
	if !ok {
		api.Fail(w, http.StatusForbidden, "forbidden", "role is not recognised", reqID)
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Claims{
		UserID:   user.ID,
		TenantID: authz.TenantOrDefault(user.TenantID),
		Role:     role,
	}, h.TokenTTL)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}

	expires := time.Now().Add(h.TokenTTL)
	if err := h.Store.CreateSession(r.Context(), user.ID, hashToken(token), expires); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	if err := h.Store.UpdateLastLogin(r.Context(), user.ID); err != nil {
		slog.Warn("update last login failed", "err", err, "userId", user.ID)
	}
	if err := h.Audit.Record(r.Context(), authz.TenantOrDefault(user.TenantID), user.ID, "auth.login", "user", user.ID, reqID, shared.ClientIP(r), nil, nil); err != nil {
		slog.Warn("audit auth.login failed", "err", err)
	}

	api.Success(w, map[string]any{
		"token":     token,
		"expiresAt": expires.UTC().Format(time.RFC3339),
		"role":      role,
		"tenantId":  authz.TenantOrDefault(user.TenantID),
	}, reqID)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	header := r.Header.Get("Authorization")
	parts := strings.Split(header, " ")
	if len(parts) == 2 {
		if err := h.Store.RevokeSession(r.Context(), actor.ID, hashToken(parts[1])); err != nil {
			slog.Warn("revoke session failed", "err", err, "userId", actor.ID)
		}
	}
	api.Success(w, map[string]string{"status": "logged_out"}, reqID)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActor(r.Context())
	api.Success(w, map[string]string{
		"userId":   actor.ID,
		"role":     actor.Role,
		"tenantId": actor.TenantID,
	}, middleware.GetRequestID(r.Context()))
}

type changePasswordPayload struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *Handler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var payload changePasswordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if len(payload.NewPassword) < 8 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "new password must be at least 8 characters", reqID)
		return
	}

	hash, err := h.Store.GetPasswordHash(r.Context(), actor.ID)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	if err := auth.CheckPassword(hash, payload.CurrentPassword); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "current password is incorrect", reqID)
		return
	}

	newHash, err := auth.HashPassword(payload.NewPassword)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	if err := h.Store.UpdatePassword(r.Context(), actor.ID, newHash); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	// Existing sessions stop working once the password changes.
	if err := h.Store.RevokeAllSessions(r.Context(), actor.ID); err != nil {
		slog.Warn("revoke sessions failed", "err", err, "userId", actor.ID)
	}
	if err := h.Audit.Record(r.Context(), actor.TenantID, actor.ID, "auth.password.change", "user", actor.ID, reqID, shared.ClientIP(r), nil, nil); err != nil {
		slog.Warn("audit password change failed", "err", err)
	}

	api.Success(w, map[string]string{"status": "password_changed"}, reqID)
}

func (h *Handler) handleMFASetup(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      h.Issuer,
		AccountName: actor.ID,
		Digits:      otp.DigitsSix,
	})
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}

	sealed, err := h.Crypto.Encrypt([]byte(key.Secret()))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	if err := h.Store.UpdateMFASecret(r.Context(), actor.ID, sealed); err != nil {
		api.FailError(w, err, reqID)
		return
	}

	api.Success(w, map[string]string{"secret": key.Secret(), "url": key.URL()}, reqID)
}

type mfaCodePayload struct {
	Code string `json:"code"`
}

func (h *Handler) handleMFAEnable(w http.ResponseWriter, r *http.Request) {
	h.setMFA(w, r, true, "auth.mfa.enable")
}

func (h *Handler) handleMFADisable(w http.ResponseWriter, r *http.Request) {
	h.setMFA(w, r, false, "auth.mfa.disable")
}

func (h *Handler) setMFA(w http.ResponseWriter, r *http.Request, enabled bool, action string) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var payload mfaCodePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	sealed, err := h.Store.GetMFASecret(r.Context(), actor.ID)
	if err != nil || len(sealed) == 0 {
		api.Fail(w, http.StatusBadRequest, "mfa_not_setup", "MFA secret has not been provisioned", reqID)
		return
	}
	secret, err := h.mfaSecret(sealed)
	if err != nil || !totp.Validate(payload.Code, secret) {
		api.Fail(w, http.StatusUnauthorized, "mfa_invalid", "invalid MFA code", reqID)
		return
	}

	if err := h.Store.SetMFAEnabled(r.Context(), actor.ID, enabled); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	if err := h.Audit.Record(r.Context(), actor.TenantID, actor.ID, action, "user", actor.ID, reqID, shared.ClientIP(r), nil, nil); err != nil {
		slog.Warn("audit mfa change failed", "err", err)
	}
	api.Success(w, map[string]bool{"mfaEnabled": enabled}, reqID)
}

func (h *Handler) mfaSecret(sealed []byte) (string, error) {
	plain, err := h.Crypto.Decrypt(sealed)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

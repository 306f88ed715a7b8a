package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/madhvpruthi/ROOV/internal/metrics"
)

// VerifyAdminRequest is the admin gate payload.
type VerifyAdminRequest struct {
	Code string `json:"code"`
}

// VerifyAdmin handles POST /api/verify-admin. This is a bare secret
// comparison, not an auth system: no session or token is issued. The
// comparison is constant-time; deployments can set ADMIN_CODE_HASH to a
// bcrypt hash instead of keeping the plain code in the environment.
func (h *Handler) VerifyAdmin(w http.ResponseWriter, r *http.Request) {
	var req VerifyAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Code == "" {
		metrics.AdminVerifications.WithLabelValues("missing").Inc()
		h.Error(w, http.StatusBadRequest, "No code provided")
		return
	}

	if !h.adminCodeMatches(req.Code) {
		metrics.AdminVerifications.WithLabelValues("invalid").Inc()
		h.Error(w, http.StatusUnauthorized, "Invalid code")
		return
	}

	metrics.AdminVerifications.WithLabelValues("success").Inc()
	h.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) adminCodeMatches(code string) bool {
	if h.cfg.AdminCodeHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminCodeHash), []byte(code)) == nil
	}
	if h.cfg.AdminCode == "" {
		// No code configured; the gate stays closed.
		return false
	}
	return subtle.ConstantTimeCompare([]byte(h.cfg.AdminCode), []byte(code)) == 1
}

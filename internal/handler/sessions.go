package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BennersTaga/shift-management-app/internal/session"
)

func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Create()

	expiration := time.Now().Add(time.Duration(h.config.JWT.Expiration) * time.Second)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiration),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		NotBefore: jwt.NewNumericDate(time.Now()),
		Subject:   sess.ID,
	})
	ss, err := token.SignedString([]byte(h.config.JWT.Secret))
	if err != nil {
		h.sessions.Delete(sess.ID)
		h.internalServerError(w, r, err)
		return
	}

	// http-only の cookie でセッショントークンを返す
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    ss,
		Expires:  expiration,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
	}

	if h.config.Environment == "production" {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteStrictMode
	}

	http.SetCookie(w, cookie)

	h.successResponse(w, r, "セッションを開始しました", map[string]any{
		"state": sess.State(),
	})
}

func (h *Handler) SelectEmployee(w http.ResponseWriter, r *http.Request) {
	sess := r.Context().Value(SessionCtx).(*session.Session)

	var req struct {
		EmployeeID string `json:"employeeId" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee, err := h.repository.GetEmployeeByID(req.EmployeeID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "従業員が見つかりません")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	sess.SelectEmployee(employee)

	h.successResponse(w, r, "従業員を選択しました", employee)
}

func (h *Handler) DeselectEmployee(w http.ResponseWriter, r *http.Request) {
	sess := r.Context().Value(SessionCtx).(*session.Session)

	sess.DeselectEmployee()

	h.successResponse(w, r, "従業員選択に戻りました", nil)
}

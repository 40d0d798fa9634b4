package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const sessionCookieName = "__shift_management_session"

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("リクエストを処理しました", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // slog に載せると読みづらいのでそのまま出す
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// cookie からセッショントークンを取得する
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			switch {
			case errors.Is(err, http.ErrNoCookie):
				h.errorResponse(w, r, "セッションが開始されていません")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		claims := &jwt.RegisteredClaims{}
		_, err = jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(h.config.JWT.Secret), nil
		})
		if err != nil {
			h.errorResponse(w, r, "無効なセッショントークンです")
			return
		}

		sess, ok := h.sessions.Get(claims.Subject)
		if !ok {
			// サーバー再起動などでセッションが失われた場合
			h.errorResponse(w, r, "セッションの有効期限が切れています。再度開始してください")
			return
		}

		ctx := context.WithValue(r.Context(), SessionCtx, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		password := r.Header.Get("X-Admin-Password")
		if password == "" {
			h.errorResponse(w, r, "管理者パスワードが必要です")
			return
		}

		hash, err := h.repository.GetAdminPasswordHash()
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
			switch {
			case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
				h.errorResponse(w, r, "管理者パスワードが正しくありません")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		next.ServeHTTP(w, r)
	})
}

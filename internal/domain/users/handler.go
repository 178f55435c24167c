package users

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"stray-adoption/internal/middleware"
	"stray-adoption/internal/platform/httpx"
	"stray-adoption/internal/platform/metrics"
	"stray-adoption/internal/ports/auth"
)

func RegisterRoutes(r chi.Router, svc *Service, sessions auth.SessionStore) {
	r.Route("/api/auth", func(ar chi.Router) {
		ar.Post("/login", loginHandler(svc, sessions))
		ar.Post("/logout", logoutHandler(sessions))
		ar.Get("/me", meHandler())
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func loginHandler(svc *Service, sessions auth.SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if strings.TrimSpace(req.Username) == "" || req.Password == "" {
			httpx.Error(w, http.StatusBadRequest, "missing username or password")
			return
		}

		u, err := svc.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			metrics.LoginsTotal.WithLabelValues("failed").Inc()
			httpx.Error(w, http.StatusUnauthorized, "invalid username or password")
			return
		}

		token := uuid.NewString()
		id := auth.Identity{UserID: u.ID, Username: u.Username, Role: u.Role}
		if err := sessions.Create(r.Context(), token, id); err != nil {
			httpx.Error(w, http.StatusInternalServerError, "could not create session")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.CookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Secure:   r.TLS != nil,
		})

		metrics.LoginsTotal.WithLabelValues("ok").Inc()
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"user":   toUserResponse(u),
		})
	}
}

func logoutHandler(sessions auth.SessionStore) http.HandlerFunc {
	// Logout es idempotente: sin cookie o con token desconocido responde ok igual.
	return func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(middleware.CookieName); err == nil && c.Value != "" {
			_ = sessions.Delete(r.Context(), c.Value)
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})

		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func meHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.GetIdentity(r.Context())
		if !ok {
			httpx.WriteJSON(w, http.StatusOK, map[string]any{"user": nil})
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"user": userResponse{
				ID:       id.UserID,
				Username: id.Username,
				Role:     string(id.Role),
			},
		})
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     string(u.Role),
	}
}

package adoptions

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"stray-adoption/internal/middleware"
	"stray-adoption/internal/platform/httpx"
	"stray-adoption/internal/platform/metrics"
	"stray-adoption/internal/ports/auth"
)

func RegisterRoutes(r chi.Router, svc *Service, log *zap.SugaredLogger) {
	r.Post("/api/adoptions/apply", applyHandler(svc, log))
	r.Get("/api/adoptions/my", myApplicationsHandler(svc, log))

	r.Route("/api/admin/adoptions", func(ar chi.Router) {
		ar.Get("/", listForReviewHandler(svc, log))
		ar.Post("/{applicationID}/approve", approveHandler(svc, log))
		ar.Post("/{applicationID}/reject", rejectHandler(svc, log))
	})
}

type applyRequest struct {
	AnimalID string `json:"animal_id"`
	Contact  string `json:"contact"`
	Reason   string `json:"reason"`
}

type applicationResponse struct {
	ID         string     `json:"id"`
	AnimalID   string     `json:"animal_id"`
	UserID     string     `json:"user_id"`
	Contact    string     `json:"contact"`
	Reason     string     `json:"reason"`
	Status     string     `json:"status"`
	ReviewedBy *string    `json:"reviewed_by"`
	CreatedAt  time.Time  `json:"created_at"`
	ReviewedAt *time.Time `json:"reviewed_at"`
}

type reviewItemResponse struct {
	applicationResponse
	Username   string `json:"username"`
	AnimalName string `json:"animal_name"`
}

type myApplicationResponse struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	AnimalName string    `json:"animal_name"`
}

func applyHandler(svc *Service, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.RequireRole(w, r, auth.RoleUser)
		if !ok {
			return
		}

		var req applyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		app, err := svc.Submit(r.Context(), id.UserID, SubmitInput{
			AnimalID: req.AnimalID,
			Contact:  req.Contact,
			Reason:   req.Reason,
		})
		switch {
		case err == nil:
			httpx.WriteJSON(w, http.StatusOK, map[string]any{
				"status":        "ok",
				"applicationId": app.ID,
			})
		case errors.Is(err, ErrInvalidInput):
			httpx.Error(w, http.StatusBadRequest, "missing animal_id or contact")
		case errors.Is(err, ErrAnimalNotFound):
			httpx.Error(w, http.StatusNotFound, "animal not found")
		default:
			log.Errorw("adoption submit failed", "err", err)
			httpx.Error(w, http.StatusInternalServerError, "could not submit application")
		}
	}
}

func myApplicationsHandler(svc *Service, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.RequireRole(w, r, auth.RoleUser)
		if !ok {
			return
		}

		items, err := svc.ListByUser(r.Context(), id.UserID)
		if err != nil {
			log.Errorw("adoption my list failed", "err", err)
			httpx.Error(w, http.StatusInternalServerError, "could not list applications")
			return
		}

		out := make([]myApplicationResponse, 0, len(items))
		for _, it := range items {
			out = append(out, myApplicationResponse{
				ID:         it.ID,
				Status:     string(it.Status),
				CreatedAt:  it.CreatedAt,
				AnimalName: it.AnimalName,
			})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func listForReviewHandler(svc *Service, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireRole(w, r, auth.RoleAdmin); !ok {
			return
		}

		items, err := svc.ListForReview(r.Context())
		if err != nil {
			log.Errorw("adoption review list failed", "err", err)
			httpx.Error(w, http.StatusInternalServerError, "could not list applications")
			return
		}

		out := make([]reviewItemResponse, 0, len(items))
		for _, it := range items {
			out = append(out, reviewItemResponse{
				applicationResponse: toApplicationResponse(it.Application),
				Username:            it.Username,
				AnimalName:          it.AnimalName,
			})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func approveHandler(svc *Service, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.RequireRole(w, r, auth.RoleAdmin)
		if !ok {
			return
		}

		err := svc.Approve(r.Context(), id.UserID, chi.URLParam(r, "applicationID"))
		switch {
		case err == nil:
			metrics.AdoptionDecisionsTotal.WithLabelValues("approved").Inc()
			httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		case errors.Is(err, ErrNotFound):
			httpx.Error(w, http.StatusNotFound, "application not found")
		default:
			log.Errorw("adoption approve failed", "err", err)
			httpx.Error(w, http.StatusInternalServerError, "approve failed")
		}
	}
}

func rejectHandler(svc *Service, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.RequireRole(w, r, auth.RoleAdmin)
		if !ok {
			return
		}

		appID := chi.URLParam(r, "applicationID")
		res, err := svc.Reject(r.Context(), id.UserID, appID)
		switch {
		case err == nil:
			if res.RollbackSkipped {
				// El rechazo ya quedó firme; solo falló restaurar el animal.
				// Se loguea para que un admin pueda reconciliar a mano.
				log.Warnw("adoption reject: animal rollback skipped",
					"application", appID, "detail", res.Message)
			}
			metrics.AdoptionDecisionsTotal.WithLabelValues("rejected").Inc()
			httpx.WriteJSON(w, http.StatusOK, map[string]string{
				"status":  "ok",
				"message": res.Message,
			})
		case errors.Is(err, ErrNotFound):
			httpx.Error(w, http.StatusNotFound, "application not found")
		default:
			log.Errorw("adoption reject failed", "err", err)
			httpx.Error(w, http.StatusInternalServerError, "reject failed")
		}
	}
}

func toApplicationResponse(a Application) applicationResponse {
	return applicationResponse{
		ID:         a.ID,
		AnimalID:   a.AnimalID,
		UserID:     a.UserID,
		Contact:    a.Contact,
		Reason:     a.Reason,
		Status:     string(a.Status),
		ReviewedBy: a.ReviewedBy,
		CreatedAt:  a.CreatedAt,
		ReviewedAt: a.ReviewedAt,
	}
}

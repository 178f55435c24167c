package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"stray-adoption/internal/domain/animals"
	"stray-adoption/internal/middleware"
	"stray-adoption/internal/platform/httpx"
	"stray-adoption/internal/ports/auth"
)

func RegisterRoutes(r chi.Router, svc *Service, animalsSvc *animals.Service, log *zap.SugaredLogger) {
	r.Post("/api/animals/{animalID}/health", addRecordHandler(svc, animalsSvc, log))
	r.Get("/api/animals/{animalID}/health", getHealthHandler(svc, animalsSvc))
}

type addRecordRequest struct {
	Vaccinated bool   `json:"vaccinated"`
	Neutered   bool   `json:"neutered"`
	Dewormed   bool   `json:"dewormed"`
	Notes      string `json:"notes"`
}

type healthDetailResponse struct {
	Name       string     `json:"name"`
	Species    string     `json:"species"`
	Vaccinated bool       `json:"vaccinated"`
	Neutered   bool       `json:"neutered"`
	Dewormed   bool       `json:"dewormed"`
	Notes      string     `json:"notes"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

func addRecordHandler(svc *Service, animalsSvc *animals.Service, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.RequireRole(w, r, auth.RoleRegistrar, auth.RoleAdmin)
		if !ok {
			return
		}

		animalID := chi.URLParam(r, "animalID")
		if _, err := animalsSvc.GetByID(r.Context(), animalID); err != nil {
			httpx.Error(w, http.StatusNotFound, "animal not found")
			return
		}

		var req addRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		rec, err := svc.Add(r.Context(), animalID, id.UserID, AddInput{
			Vaccinated: req.Vaccinated,
			Neutered:   req.Neutered,
			Dewormed:   req.Dewormed,
			Notes:      req.Notes,
		})
		if err != nil {
			log.Errorw("health record create failed", "err", err, "animal", animalID)
			httpx.Error(w, http.StatusInternalServerError, "could not save health record")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"status":   "ok",
			"recordId": rec.ID,
		})
	}
}

func getHealthHandler(svc *Service, animalsSvc *animals.Service) http.HandlerFunc {
	// Ficha de salud: animal + último registro. Sin registros devuelve
	// la ficha en cero, porque el animal sí existe.
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := animalsSvc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "animal not found")
			return
		}

		resp := healthDetailResponse{
			Name:    a.Name,
			Species: a.Species,
			Notes:   "no health record yet",
		}

		rec, err := svc.Latest(r.Context(), a.ID)
		if err == nil {
			t := rec.UpdatedAt
			resp.Vaccinated = rec.Vaccinated
			resp.Neutered = rec.Neutered
			resp.Dewormed = rec.Dewormed
			resp.Notes = rec.Notes
			resp.UpdatedAt = &t
		} else if !errors.Is(err, ErrNoRecord) {
			httpx.Error(w, http.StatusInternalServerError, "could not read health record")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, resp)
	}
}

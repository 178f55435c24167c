package animals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"stray-adoption/internal/middleware"
	"stray-adoption/internal/platform/httpx"
	"stray-adoption/internal/ports/auth"
)

// HealthSnapshot es la vista del último registro de salud que necesitan el
// detalle y el listado admin. La interfaz vive acá (lado consumidor) para que
// health pueda importar animals sin ciclo.
type HealthSnapshot struct {
	Vaccinated bool
	Neutered   bool
	Dewormed   bool
	Notes      string
	UpdatedAt  time.Time
}

type HealthReader interface {
	// LatestSnapshot devuelve ok=false si el animal no tiene registros.
	LatestSnapshot(ctx context.Context, animalID string) (HealthSnapshot, bool, error)
}

func RegisterRoutes(r chi.Router, svc *Service, healthReader HealthReader, log *zap.SugaredLogger) {
	r.Route("/api/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc, log))
		ar.Get("/", listAnimalsHandler(svc, log))
		ar.Get("/{animalID}", getAnimalHandler(svc, healthReader))
		ar.Post("/{animalID}/publish", publishHandler(svc, log))
		ar.Post("/{animalID}/republish", republishHandler(svc, log))
	})

	r.Route("/api/admin/animals", func(ar chi.Router) {
		ar.Post("/{animalID}/publish", adminPublishHandler(svc, log))
		ar.Post("/{animalID}/unpublish", unpublishHandler(svc, log))
		ar.Get("/full", listFullHandler(svc, healthReader, log))
	})
}

type createAnimalRequest struct {
	Name        string `json:"name"`
	Species     string `json:"species"`
	FosterType  string `json:"foster_type"`
	Sex         string `json:"sex"`
	Age         string `json:"age"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type animalResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Sex         string    `json:"sex"`
	Age         string    `json:"age"`
	Status      string    `json:"status"`
	FosterType  string    `json:"foster_type"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type healthResponse struct {
	Vaccinated bool       `json:"vaccinated"`
	Neutered   bool       `json:"neutered"`
	Dewormed   bool       `json:"dewormed"`
	Notes      string     `json:"notes"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

type animalFullResponse struct {
	animalResponse
	Vaccinated      bool       `json:"vaccinated"`
	Neutered        bool       `json:"neutered"`
	Dewormed        bool       `json:"dewormed"`
	HealthNotes     string     `json:"health_notes"`
	HealthUpdatedAt *time.Time `json:"health_updated_at"`
}

func createAnimalHandler(svc *Service, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.RequireRole(w, r, auth.RoleRegistrar, auth.RoleAdmin)
		if !ok {
			return
		}

		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		a, err := svc.Register(r.Context(), id.UserID, CreateInput{
			Name:        req.Name,
			Species:     req.Species,
			FosterType:  req.FosterType,
			Sex:         req.Sex,
			Age:         req.Age,
			Location:    req.Location,
			Description: req.Description,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpx.Error(w, http.StatusBadRequest, "missing name or species")
				return
			}
			log.Errorw("animal create failed", "err", err)
			httpx.Error(w, http.StatusInternalServerError, "could not create animal")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"status":   "ok",
			"animalId": a.ID,
		})
	}
}

func listAnimalsHandler(svc *Service, log *zap.SugaredLogger) http.HandlerFunc {
	// Público. Anónimos y rol user ven solo published; el staff ve todo.
	return func(w http.ResponseWriter, r *http.Request) {
		id, authed := middleware.GetIdentity(r.Context())
		staff := authed && id.Role.OneOf(auth.RoleRegistrar, auth.RoleAdmin)

		items, err := svc.List(r.Context(), staff)
		if err != nil {
			log.Errorw("animal list failed", "err", err)
			httpx.Error(w, http.StatusInternalServerError, "could not list animals")
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getAnimalHandler(svc *Service, healthReader HealthReader) http.HandlerFunc {
	// Detalle público: animal + último registro de salud.
	// Sin registros devuelve el objeto "sin datos" en cero, no un 404.
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			httpx.Error(w, http.StatusNotFound, "animal not found")
			return
		}

		health := healthResponse{Notes: "no health record yet"}
		if snap, found, err := healthReader.LatestSnapshot(r.Context(), a.ID); err == nil && found {
			t := snap.UpdatedAt
			health = healthResponse{
				Vaccinated: snap.Vaccinated,
				Neutered:   snap.Neutered,
				Dewormed:   snap.Dewormed,
				Notes:      snap.Notes,
				UpdatedAt:  &t,
			}
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"animal": toAnimalResponse(a),
			"health": health,
		})
	}
}

func publishHandler(svc *Service, log *zap.SugaredLogger) http.HandlerFunc {
	return statusChangeHandler(svc.Publish, log, "publish failed",
		auth.RoleRegistrar, auth.RoleAdmin)
}

func adminPublishHandler(svc *Service, log *zap.SugaredLogger) http.HandlerFunc {
	return statusChangeHandler(svc.Publish, log, "publish failed", auth.RoleAdmin)
}

func unpublishHandler(svc *Service, log *zap.SugaredLogger) http.HandlerFunc {
	return statusChangeHandler(svc.Unpublish, log, "unpublish failed", auth.RoleAdmin)
}

// statusChangeHandler factoriza publish/unpublish: mismo shape, distinto set
// de roles y transición.
func statusChangeHandler(op func(context.Context, string) error, log *zap.SugaredLogger, failMsg string, allowed ...auth.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireRole(w, r, allowed...); !ok {
			return
		}

		if err := op(r.Context(), chi.URLParam(r, "animalID")); err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.Error(w, http.StatusNotFound, "animal not found")
				return
			}
			log.Errorw("animal status change failed", "err", err)
			httpx.Error(w, http.StatusInternalServerError, failMsg)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func republishHandler(svc *Service, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireRole(w, r, auth.RoleRegistrar, auth.RoleAdmin); !ok {
			return
		}

		err := svc.Republish(r.Context(), chi.URLParam(r, "animalID"))
		switch {
		case err == nil:
			httpx.WriteJSON(w, http.StatusOK, map[string]string{
				"status":  "ok",
				"message": "animal republished",
			})
		case errors.Is(err, ErrAlreadyAdopted):
			httpx.Error(w, http.StatusBadRequest, "animal already adopted, cannot republish")
		case errors.Is(err, ErrNotFound):
			httpx.Error(w, http.StatusNotFound, "animal not found")
		default:
			log.Errorw("animal republish failed", "err", err)
			httpx.Error(w, http.StatusInternalServerError, "republish failed")
		}
	}
}

func listFullHandler(svc *Service, healthReader HealthReader, log *zap.SugaredLogger) http.HandlerFunc {
	// Vista admin: todos los animales con su último registro de salud.
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireRole(w, r, auth.RoleAdmin); !ok {
			return
		}

		items, err := svc.List(r.Context(), true)
		if err != nil {
			log.Errorw("animal full list failed", "err", err)
			httpx.Error(w, http.StatusInternalServerError, "could not list animals")
			return
		}

		out := make([]animalFullResponse, 0, len(items))
		for _, a := range items {
			row := animalFullResponse{animalResponse: toAnimalResponse(a)}
			if snap, found, err := healthReader.LatestSnapshot(r.Context(), a.ID); err == nil && found {
				t := snap.UpdatedAt
				row.Vaccinated = snap.Vaccinated
				row.Neutered = snap.Neutered
				row.Dewormed = snap.Dewormed
				row.HealthNotes = snap.Notes
				row.HealthUpdatedAt = &t
			}
			out = append(out, row)
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:          a.ID,
		Name:        a.Name,
		Species:     a.Species,
		Sex:         a.Sex,
		Age:         a.Age,
		Status:      string(a.Status),
		FosterType:  a.FosterType,
		Description: a.Description,
		Location:    a.Location,
		CreatedBy:   a.CreatedBy,
		CreatedAt:   a.CreatedAt,
	}
}

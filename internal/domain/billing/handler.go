package billing

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
	// Catálogo: público, sin auth.
	r.Get("/api/vaccine", catalogHandler(func() []Product { return svc.Catalog().Vaccine }))
	r.Get("/api/food", catalogHandler(func() []Product { return svc.Catalog().Food }))
	r.Get("/api/insurance", catalogHandler(func() []Product { return svc.Catalog().Insurance }))

	r.Post("/api/payment", paymentHandler(svc, log))
	r.Get("/api/orders", myOrdersHandler(svc, log))
	r.Get("/api/admin/orders", allOrdersHandler(svc, log))
}

type paymentRequest struct {
	ServiceType string  `json:"service_type"`
	ProductName string  `json:"product_name"`
	Amount      float64 `json:"amount"`
}

type orderResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ServiceType string    `json:"service_type"`
	ProductName string    `json:"product_name"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
	Revenue     *float64  `json:"revenue"`
}

func catalogHandler(products func() []Product) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, products())
	}
}

func paymentHandler(svc *Service, log *zap.SugaredLogger) http.HandlerFunc {
	// Cualquier usuario autenticado puede pagar, sin importar el rol.
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.RequireRole(w, r, auth.RoleAdmin, auth.RoleRegistrar, auth.RoleUser)
		if !ok {
			return
		}

		var req paymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		o, err := svc.Pay(r.Context(), id.UserID, PaymentInput{
			ServiceType: req.ServiceType,
			ProductName: req.ProductName,
			Amount:      req.Amount,
		})
		switch {
		case err == nil:
			metrics.OrdersTotal.Inc()
			httpx.WriteJSON(w, http.StatusOK, map[string]any{
				"status":   "success",
				"order_id": o.ID,
			})
		case errors.Is(err, ErrInvalidInput):
			httpx.Error(w, http.StatusBadRequest, "missing service_type, product_name or amount")
		default:
			log.Errorw("payment failed", "err", err)
			httpx.Error(w, http.StatusInternalServerError, "could not create order")
		}
	}
}

func myOrdersHandler(svc *Service, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.RequireRole(w, r, auth.RoleAdmin, auth.RoleRegistrar, auth.RoleUser)
		if !ok {
			return
		}

		items, err := svc.ListByUser(r.Context(), id.UserID)
		if err != nil {
			log.Errorw("order list failed", "err", err)
			httpx.Error(w, http.StatusInternalServerError, "could not list orders")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toOrderResponses(items))
	}
}

func allOrdersHandler(svc *Service, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireRole(w, r, auth.RoleAdmin); !ok {
			return
		}

		items, err := svc.ListAll(r.Context())
		if err != nil {
			log.Errorw("admin order list failed", "err", err)
			httpx.Error(w, http.StatusInternalServerError, "could not list orders")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toOrderResponses(items))
	}
}

func toOrderResponses(items []OrderWithRevenue) []orderResponse {
	out := make([]orderResponse, 0, len(items))
	for _, it := range items {
		out = append(out, orderResponse{
			ID:          it.ID,
			UserID:      it.UserID,
			ServiceType: it.ServiceType,
			ProductName: it.ProductName,
			Amount:      it.Amount,
			CreatedAt:   it.CreatedAt,
			Revenue:     it.Revenue,
		})
	}
	return out
}

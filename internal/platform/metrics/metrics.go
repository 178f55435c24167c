// Package metrics concentra los instrumentos Prometheus del servicio.
// Todos los collectors se registran contra el registry global; basta con
// importar el paquete para que aparezcan en /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Requests HTTP atendidos, por código de estado.",
		},
		[]string{"status"},
	)

	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Intentos de login, por resultado (ok|failed).",
		},
		[]string{"result"},
	)

	AdoptionDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adoption_decisions_total",
			Help: "Decisiones de revisión de solicitudes (approved|rejected).",
		},
		[]string{"decision"},
	)

	OrdersTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_total",
			Help: "Órdenes de servicios pagos creadas.",
		})
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		LoginsTotal,
		AdoptionDecisionsTotal,
		OrdersTotal,
	)
}

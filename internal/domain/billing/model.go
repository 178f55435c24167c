package billing

import "time"

// Product es un ítem del catálogo de servicios pagos.
type Product struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Catalog es la configuración inmutable de productos, cargada al arranque.
// No hay alta/baja de productos en runtime.
type Catalog struct {
	Vaccine   []Product
	Food      []Product
	Insurance []Product
}

// DefaultCatalog replica el catálogo fijo de la plataforma.
func DefaultCatalog() Catalog {
	return Catalog{
		Vaccine: []Product{
			{ID: 1, Name: "Basic immunization package", Amount: 199},
			{ID: 2, Name: "Full vaccination package", Amount: 399},
		},
		Food: []Product{
			{ID: 11, Name: "Kitten food 2kg", Amount: 128},
			{ID: 12, Name: "Adult dog food 5kg", Amount: 239},
		},
		Insurance: []Product{
			{ID: 21, Name: "Basic health plan", Amount: 199},
			{ID: 22, Name: "Premium medical plan", Amount: 399},
		},
	}
}

// Order es una compra de servicio pago. Nunca se muta ni se borra.
type Order struct {
	ID          string
	UserID      string
	ServiceType string // vaccine/food/insurance/donation
	ProductName string
	Amount      float64
	CreatedAt   time.Time
}

// RevenueRecord es la fila de ingreso derivada de una orden; se crea junto
// con la orden y nunca se muta.
type RevenueRecord struct {
	ID          string
	OrderID     string
	RevenueType string
	Amount      float64
	CreatedAt   time.Time
}

// OrderWithRevenue es la vista de listado: la orden con su ingreso asociado.
// Revenue en nil significa orden sin fila de ingreso (no debería pasar, pero
// el join es LEFT por las dudas).
type OrderWithRevenue struct {
	Order
	Revenue *float64
}

package model

import "time"

// Product represents a producer's listed product as served by the upstream
// API. Prices are decimal values owned by the backend; the console never
// does arithmetic on them beyond display.
type Product struct {
	ID          int64      `json:"id,omitempty"`
	ProducerID  int64      `json:"productorId"`
	Name        string     `json:"nombre"`
	Description string     `json:"descripcion,omitempty"`
	Price       float64    `json:"precio"`
	Stock       int        `json:"stock"`
	Unit        string     `json:"unidadMedida"`
	ImageURL    string     `json:"imagenUrl,omitempty"`
	Active      bool       `json:"activo"`
	Available   bool       `json:"disponible"`
	CreatedAt   *time.Time `json:"fechaRegistro,omitempty"`
	UpdatedAt   *time.Time `json:"fechaActualizacion,omitempty"`
}

// CreateProductRequest carries the fields needed to list a product.
type CreateProductRequest struct {
	ProducerID  int64   `json:"productorId"`
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion,omitempty"`
	Price       float64 `json:"precio"`
	Stock       int     `json:"stock"`
	Unit        string  `json:"unidadMedida"`
	ImageURL    string  `json:"imagenUrl,omitempty"`
}

// UpdateProductRequest carries the mutable descriptive fields. Price and
// stock have dedicated operations upstream and are not updated here.
type UpdateProductRequest struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion,omitempty"`
	Unit        string `json:"unidadMedida"`
}

// UpdatePriceRequest sets a new unit price.
type UpdatePriceRequest struct {
	Price float64 `json:"precio"`
}

// UpdateStockRequest sets an absolute stock level.
type UpdateStockRequest struct {
	Stock int `json:"stock"`
}

// ProductSearch holds optional product search filters.
type ProductSearch struct {
	ProducerID    *int64
	Name          string
	MinPrice      *float64
	MaxPrice      *float64
	Unit          string
	OnlyAvailable *bool
}

// ProductStatistics is the upstream aggregate for the products dashboard card.
type ProductStatistics struct {
	Total          int     `json:"totalProductos"`
	Active         int     `json:"productosActivos"`
	Available      int     `json:"productosDisponibles"`
	OutOfStock     int     `json:"productosSinStock"`
	AveragePrice   float64 `json:"precioPromedio"`
	InventoryValue float64 `json:"valorTotalInventario"`
}

package model

import "time"

// OrderStatus is the lifecycle state of an order. Transitions are enforced
// by the upstream API; the console only requests them.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDIENTE"
	OrderStatusConfirmed OrderStatus = "CONFIRMADO"
	OrderStatusInRoute   OrderStatus = "EN_CAMINO"
	OrderStatusDelivered OrderStatus = "ENTREGADO"
	OrderStatusCancelled OrderStatus = "CANCELADO"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusInRoute,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order represents a marketplace order as served by the upstream API.
type Order struct {
	ID           int64         `json:"id,omitempty"`
	Number       string        `json:"numeroPedido"`
	ClientID     int64         `json:"clienteId"`
	Status       OrderStatus   `json:"estado"`
	DeliveryZone string        `json:"zonaEntrega"`
	OrderedAt    time.Time     `json:"fechaPedido"`
	DeliverBy    *time.Time    `json:"fechaEntregaProgramada,omitempty"`
	Total        float64       `json:"montoTotal"`
	Notes        string        `json:"observaciones,omitempty"`
	Lines        []OrderDetail `json:"detalles"`
}

// OrderDetail is a single product line on an order.
type OrderDetail struct {
	ID          int64   `json:"id,omitempty"`
	ProductID   int64   `json:"productoId"`
	ProductName string  `json:"nombreProducto,omitempty"`
	Quantity    int     `json:"cantidad"`
	UnitPrice   float64 `json:"precioUnitario"`
	Subtotal    float64 `json:"subtotal"`
}

// CreateOrderRequest carries the fields needed to place an order.
type CreateOrderRequest struct {
	ClientID     int64                      `json:"clienteId"`
	DeliveryZone string                     `json:"zonaEntrega"`
	DeliverBy    *time.Time                 `json:"fechaEntregaProgramada,omitempty"`
	Notes        string                     `json:"observaciones,omitempty"`
	Lines        []CreateOrderDetailRequest `json:"detalles"`
}

// CreateOrderDetailRequest is one requested product line.
type CreateOrderDetailRequest struct {
	ProductID int64   `json:"productoId"`
	Quantity  int     `json:"cantidad"`
	UnitPrice float64 `json:"precioUnitario"`
}

// UpdateOrderRequest carries the mutable order fields.
type UpdateOrderRequest struct {
	DeliveryZone string     `json:"zonaEntrega"`
	DeliverBy    *time.Time `json:"fechaEntregaProgramada,omitempty"`
	Notes        string     `json:"observaciones,omitempty"`
}

// UpdateOrderStatusRequest requests an explicit status transition.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"estado"`
}

// OrderSearch holds optional order listing filters.
type OrderSearch struct {
	ClientID     *int64
	Status       OrderStatus
	DeliveryZone string
	From         *time.Time
	To           *time.Time
}

// OrderSummary is the condensed aggregate served under /stats/summary. Its
// upstream contract uses English keys, unlike the rest of the order surface.
type OrderSummary struct {
	Total            int     `json:"totalOrders"`
	Pending          int     `json:"pendingOrders"`
	Processing       int     `json:"processingOrders"`
	Completed        int     `json:"completedOrders"`
	Delivered        int     `json:"deliveredOrders"`
	Cancelled        int     `json:"cancelledOrders"`
	TotalRevenue     float64 `json:"totalRevenue"`
	AverageValue     float64 `json:"averageOrderValue"`
	SuccessRate      float64 `json:"successRate"`
	CancellationRate float64 `json:"cancellationRate"`
}

// OrderStatistics is the upstream aggregate for the orders dashboard card.
type OrderStatistics struct {
	Total            int     `json:"totalPedidos"`
	Pending          int     `json:"pedidosPendientes"`
	Confirmed        int     `json:"pedidosConfirmados"`
	InRoute          int     `json:"pedidosEnCamino"`
	Delivered        int     `json:"pedidosEntregados"`
	Cancelled        int     `json:"pedidosCancelados"`
	TotalSales       float64 `json:"montoTotalVentas"`
	AverageValue     float64 `json:"valorPromedioPedido"`
	SuccessRate      float64 `json:"tasaExito"`
	CancellationRate float64 `json:"tasaCancelacion"`
}

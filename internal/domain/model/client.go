//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// Client represents a marketplace client (buyer) record as served by the
// upstream API. Field names mirror the upstream JSON contract.
type Client struct {
	ID                  int64      `json:"id,omitempty"`
	Name                string     `json:"nombre"`
	WhatsappPhone       string     `json:"telefonoWhatsapp"`
	MarketZone          string     `json:"mercadoZona"`
	ClientType          string     `json:"tipoCliente"`
	Address             string     `json:"direccion,omitempty"`
	ExtraContact        string     `json:"contactoAdicional,omitempty"`
	Active              bool       `json:"activo"`
	RegisteredAt        *time.Time `json:"fechaRegistro,omitempty"`
	LastInteractionAt   *time.Time `json:"fechaUltimaInteraccion,omitempty"`
	UpdatedAt           *time.Time `json:"fechaActualizacion,omitempty"`
	DaysWithoutActivity int        `json:"diasSinInteraccion,omitempty"`
}

// CreateClientRequest carries the fields needed to register a client.
type CreateClientRequest struct {
	Name          string `json:"nombre"`
	WhatsappPhone string `json:"telefonoWhatsapp"`
	MarketZone    string `json:"mercadoZona"`
	ClientType    string `json:"tipoCliente"`
	Address       string `json:"direccion,omitempty"`
	ExtraContact  string `json:"contactoAdicional,omitempty"`
}

// UpdateClientRequest carries the mutable client fields.
type UpdateClientRequest struct {
	Name         string `json:"nombre"`
	MarketZone   string `json:"mercadoZona"`
	Address      string `json:"direccion,omitempty"`
	ExtraContact string `json:"contactoAdicional,omitempty"`
}

// ClientSearch holds optional client search filters.
type ClientSearch struct {
	Name       string
	MarketZone string
	ClientType string
	OnlyActive *bool
}

// ClientStatistics is the upstream aggregate for the clients dashboard card.
type ClientStatistics struct {
	Total          int     `json:"totalClientes"`
	Active         int     `json:"clientesActivos"`
	Inactive       int     `json:"clientesInactivos"`
	Recent         int     `json:"clientesRecientes"`
	RecentActivity int     `json:"clientesConActividadReciente"`
	NeedFollowup   int     `json:"clientesNecesitanSeguimiento"`
	ActivityRate   float64 `json:"tasaActividad"`
}

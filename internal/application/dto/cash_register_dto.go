package dto

import "time"

// CreateCashRegisterRequest entrada para dar de alta una caja.
type CreateCashRegisterRequest struct {
	LocationID string `json:"location_id" validate:"required"`
	Name       string `json:"name" validate:"required,min=1,max=120"`
	IsMain     bool   `json:"is_main"`
}

// RenameCashRegisterRequest entrada para renombrar una caja.
type RenameCashRegisterRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// CashRegisterResponse salida de una caja.
type CashRegisterResponse struct {
	ID         string    `json:"id"`
	LocationID string    `json:"location_id"`
	Name       string    `json:"name"`
	IsActive   bool      `json:"is_active"`
	IsMain     bool      `json:"is_main"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CashRegisterListResponse listado de cajas de una sucursal.
type CashRegisterListResponse struct {
	Items []CashRegisterResponse `json:"items"`
}

package entity

import "time"

// CashRegister caja (física o lógica) de una sucursal. Se desactiva, nunca se borra.
type CashRegister struct {
	ID         string
	LocationID string
	Name       string
	IsActive   bool
	IsMain     bool // a lo sumo una principal por sucursal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

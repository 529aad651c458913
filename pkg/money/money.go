// Package money fija la semántica monetaria de la caja: montos decimales exactos
// (shopspring/decimal) con la escala de la moneda configurada (ISO 4217, vía x/text/currency).
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// ErrPrecision el monto tiene más decimales de los que admite la moneda.
var ErrPrecision = errors.New("monto con más decimales de los permitidos por la moneda")

// Currency moneda de operación de la caja.
type Currency struct {
	unit  currency.Unit
	scale int32
}

// New construye la moneda a partir de su código ISO (ej. "MXN").
func New(code string) (Currency, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Currency{}, fmt.Errorf("moneda %q: %w", code, err)
	}
	scale, _ := currency.Standard.Rounding(unit)
	return Currency{unit: unit, scale: int32(scale)}, nil
}

// MustNew como New pero entra en pánico si el código no es válido.
func MustNew(code string) Currency {
	c, err := New(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Code código ISO de la moneda.
func (c Currency) Code() string { return c.unit.String() }

// Scale cantidad de decimales de la unidad menor (2 para MXN).
func (c Currency) Scale() int32 { return c.scale }

// Validate verifica que el monto sea representable en la moneda sin redondeo.
func (c Currency) Validate(amount decimal.Decimal) error {
	if !amount.Equal(amount.Round(c.scale)) {
		return fmt.Errorf("%w: %s (máx. %d)", ErrPrecision, amount.String(), c.scale)
	}
	return nil
}

// Round redondea a la escala de la moneda (half away from zero).
func (c Currency) Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(c.scale)
}

// Format representación de visualización, ej. "MXN 1234.50".
func (c Currency) Format(amount decimal.Decimal) string {
	return c.Code() + " " + amount.StringFixed(c.scale)
}

package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Caja-api/pkg/money"
)

func TestNew_EscalaMXN(t *testing.T) {
	mxn, err := money.New("MXN")
	require.NoError(t, err)
	assert.Equal(t, "MXN", mxn.Code())
	assert.Equal(t, int32(2), mxn.Scale())
}

func TestNew_EscalaSinDecimales(t *testing.T) {
	jpy := money.MustNew("JPY")
	assert.Equal(t, int32(0), jpy.Scale())
	assert.ErrorIs(t, jpy.Validate(decimal.RequireFromString("10.5")), money.ErrPrecision)
}

func TestNew_CodigoInvalido(t *testing.T) {
	_, err := money.New("XX")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	mxn := money.MustNew("MXN")

	assert.NoError(t, mxn.Validate(decimal.RequireFromString("100")))
	assert.NoError(t, mxn.Validate(decimal.RequireFromString("100.25")))
	assert.NoError(t, mxn.Validate(decimal.RequireFromString("100.500")), "ceros a la derecha no cuentan")
	assert.ErrorIs(t, mxn.Validate(decimal.RequireFromString("0.001")), money.ErrPrecision)
}

// Sumar 0.10 diez veces debe dar exactamente 1.00 (sin deriva binaria).
func TestSumaSinDeriva(t *testing.T) {
	mxn := money.MustNew("MXN")
	total := decimal.Zero
	for i := 0; i < 10; i++ {
		total = total.Add(decimal.RequireFromString("0.10"))
	}
	assert.True(t, total.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, "MXN 1.00", mxn.Format(total))
}

func TestRound(t *testing.T) {
	mxn := money.MustNew("MXN")
	assert.Equal(t, "10.13", mxn.Round(decimal.RequireFromString("10.125")).StringFixed(2))
}

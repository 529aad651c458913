package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Caja-api/internal/application/analytics"
	"github.com/jhoicas/Caja-api/internal/application/dto"
	"github.com/jhoicas/Caja-api/internal/application/register"
	"github.com/jhoicas/Caja-api/internal/application/shift"
	"github.com/jhoicas/Caja-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Caja-api/internal/interfaces/http"
	"github.com/jhoicas/Caja-api/pkg/money"
)

const (
	cajeroID  = "cajero-1"
	cajero2ID = "cajero-2"
	gerenteID = "gerente-1"
	adminID   = "admin-1"
)

type apiClient struct {
	t   *testing.T
	app *fiber.App
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	store := memory.NewStore()
	runner := memory.NewTxRunner(store)
	regUC := register.NewUseCase(runner, store.Registers(), zerolog.Nop())
	shiftUC := shift.NewUseCase(runner, store.Registers(), store.Shifts(), store.Movements(), nil,
		shift.Config{Currency: money.MustNew("MXN"), ReportTTL: time.Minute}, zerolog.Nop())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		RegisterUC:  regUC,
		ShiftUC:     shiftUC,
		DashboardUC: analytics.NewDashboardUseCase(store.Analytics(), money.MustNew("MXN")),
		JWTSecret:   testJWTSecret,
		JWTIssuer:   testIssuer,
	})
	return &apiClient{t: t, app: app}
}

// do envía la petición como userID/role y decodifica la respuesta en out (si no es nil).
func (a *apiClient) do(method, path, userID, role string, body any, out any) int {
	a.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenFor(a.t, userID, role))
	resp, err := a.app.Test(req, -1)
	require.NoError(a.t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(a.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (a *apiClient) createRegister(name string) dto.CashRegisterResponse {
	a.t.Helper()
	var reg dto.CashRegisterResponse
	status := a.do(http.MethodPost, "/api/cash-registers", adminID, "admin",
		dto.CreateCashRegisterRequest{LocationID: testLocationID, Name: name}, &reg)
	require.Equal(a.t, http.StatusCreated, status)
	return reg
}

func (a *apiClient) openShift(registerID, userID, amount string) dto.ShiftResponse {
	a.t.Helper()
	var s dto.ShiftResponse
	status := a.do(http.MethodPost, "/api/shifts", userID, "cajero",
		map[string]any{"cash_register_id": registerID, "opening_amount": amount}, &s)
	require.Equal(a.t, http.StatusCreated, status)
	return s
}

func TestShiftAPI_FlujoCompleto(t *testing.T) {
	api := newAPI(t)
	reg := api.createRegister("Caja 1")
	s := api.openShift(reg.ID, cajeroID, "200")

	var mov dto.MovementResponse
	status := api.do(http.MethodPost, "/api/shifts/"+s.ID+"/movements", cajeroID, "cajero",
		map[string]any{"type": "withdrawal", "amount": "100", "description": "pago proveedor"}, &mov)
	require.Equal(t, http.StatusCreated, status)
	assert.True(t, mov.Amount.Equal(decimal.NewFromInt(-100)))

	status = api.do(http.MethodPost, "/api/shifts/"+s.ID+"/movements", cajeroID, "cajero",
		map[string]any{"type": "deposit", "amount": 40}, nil)
	require.Equal(t, http.StatusCreated, status)

	var sum dto.SummaryResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/shifts/"+s.ID+"/summary", cajeroID, "cajero", nil, &sum))
	assert.True(t, sum.NetCashFlow.Equal(decimal.NewFromInt(140)), "got %s", sum.NetCashFlow)

	var cur dto.CurrentShiftResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/shifts/current", cajeroID, "cajero", nil, &cur))
	require.NotNil(t, cur.Shift)
	assert.Equal(t, s.ID, cur.Shift.ID)

	var closed dto.ShiftResponse
	status = api.do(http.MethodPost, "/api/shifts/"+s.ID+"/close", cajeroID, "cajero",
		map[string]any{"counted_amount": "190"}, &closed)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "closed", closed.Status)
	require.NotNil(t, closed.Discrepancy)
	assert.True(t, closed.Discrepancy.Equal(decimal.NewFromInt(50)))

	var report dto.ShiftReportResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/shifts/"+s.ID+"/report", cajeroID, "cajero", nil, &report))
	assert.Equal(t, "MXN", report.Currency)
	require.NotNil(t, report.Reconciliation)
	assert.Equal(t, "over", report.Reconciliation.Outcome)
	assert.Len(t, report.Movements, 4)

	var errBody dto.ErrorResponse
	status = api.do(http.MethodPost, "/api/shifts/"+s.ID+"/movements", cajeroID, "cajero",
		map[string]any{"type": "sale", "amount": "5"}, &errBody)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", errBody.Code)

	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/cash-registers/"+reg.ID+"/current-shift", cajeroID, "cajero", nil, &cur))
	assert.Nil(t, cur.Shift)
}

func TestShiftAPI_Errores(t *testing.T) {
	api := newAPI(t)
	reg := api.createRegister("Caja 1")

	var errBody dto.ErrorResponse
	status := api.do(http.MethodPost, "/api/shifts", cajeroID, "cajero",
		map[string]any{"cash_register_id": reg.ID, "opening_amount": "-1"}, &errBody)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", errBody.Code)

	s := api.openShift(reg.ID, cajeroID, "100")

	status = api.do(http.MethodPost, "/api/shifts", cajero2ID, "cajero",
		map[string]any{"cash_register_id": reg.ID, "opening_amount": "10"}, &errBody)
	assert.Equal(t, http.StatusConflict, status)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/shifts/no-existe", cajeroID, "cajero", nil, nil))

	// otro cajero no puede cerrar; un gerente sí
	status = api.do(http.MethodPost, "/api/shifts/"+s.ID+"/close", cajero2ID, "cajero",
		map[string]any{"counted_amount": "100"}, &errBody)
	assert.Equal(t, http.StatusForbidden, status)
	status = api.do(http.MethodPost, "/api/shifts/"+s.ID+"/close", gerenteID, "gerente",
		map[string]any{"counted_amount": "100"}, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestShiftAPI_EliminarMovimientos(t *testing.T) {
	api := newAPI(t)
	reg := api.createRegister("Caja 1")
	s := api.openShift(reg.ID, cajeroID, "100")

	var dep, sale dto.MovementResponse
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/shifts/"+s.ID+"/movements", cajeroID, "cajero",
		map[string]any{"type": "deposit", "amount": "10"}, &dep))
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/shifts/"+s.ID+"/movements", cajeroID, "cajero",
		map[string]any{"type": "sale", "amount": "10", "sale_id": "v-1", "payment_method_id": "efectivo"}, &sale))

	assert.Equal(t, http.StatusConflict, api.do(http.MethodDelete, "/api/shifts/"+s.ID+"/movements/"+sale.ID, cajeroID, "cajero", nil, nil))
	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/api/shifts/"+s.ID+"/movements/"+dep.ID, cajeroID, "cajero", nil, nil))
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, "/api/shifts/"+s.ID+"/movements/"+dep.ID, cajeroID, "cajero", nil, nil))

	var list dto.MovementListResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/shifts/"+s.ID+"/movements", cajeroID, "cajero", nil, &list))
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, "opening", list.Items[0].Type)
	assert.Equal(t, "v-1", list.Items[1].SaleID)
}

func TestShiftAPI_Anotaciones(t *testing.T) {
	api := newAPI(t)
	reg := api.createRegister("Caja 1")
	s := api.openShift(reg.ID, cajeroID, "100")
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/shifts/"+s.ID+"/close", cajeroID, "cajero",
		map[string]any{"counted_amount": "100"}, nil))

	body := dto.AnnotateShiftRequest{Notes: "revisado"}
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodPut, "/api/shifts/"+s.ID+"/annotations", cajeroID, "cajero", body, nil))

	var out dto.ShiftResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodPut, "/api/shifts/"+s.ID+"/annotations", gerenteID, "gerente", body, &out))
	assert.Equal(t, "revisado", out.ReportNotes)
}

func TestCashRegisterAPI(t *testing.T) {
	api := newAPI(t)

	var errBody dto.ErrorResponse
	status := api.do(http.MethodPost, "/api/cash-registers", cajeroID, "cajero",
		dto.CreateCashRegisterRequest{Name: "Caja X"}, &errBody)
	assert.Equal(t, http.StatusForbidden, status)

	a := api.createRegister("Caja A")
	b := api.createRegister("Caja B")

	var main dto.CashRegisterResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/cash-registers/"+b.ID+"/main", adminID, "admin", nil, &main))
	assert.True(t, main.IsMain)

	var renamed dto.CashRegisterResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodPut, "/api/cash-registers/"+a.ID, adminID, "admin",
		dto.RenameCashRegisterRequest{Name: "Caja Mostrador"}, &renamed))
	assert.Equal(t, "Caja Mostrador", renamed.Name)

	s := api.openShift(a.ID, cajeroID, "0")
	assert.Equal(t, http.StatusConflict, api.do(http.MethodPost, "/api/cash-registers/"+a.ID+"/deactivate", adminID, "admin", nil, nil))
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/shifts/"+s.ID+"/close", cajeroID, "cajero",
		map[string]any{"counted_amount": "0"}, nil))
	assert.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/cash-registers/"+a.ID+"/deactivate", adminID, "admin", nil, nil))

	var list dto.CashRegisterListResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/cash-registers", cajeroID, "cajero", nil, &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, b.ID, list.Items[0].ID)

	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/cash-registers?include_inactive=true", cajeroID, "cajero", nil, &list))
	assert.Len(t, list.Items, 2)

	var history dto.ShiftListResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/cash-registers/"+a.ID+"/shifts?limit=5", cajeroID, "cajero", nil, &history))
	require.Len(t, history.Items, 1)
	assert.Equal(t, 5, history.Page.Limit)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/cash-registers/no-existe", cajeroID, "cajero", nil, nil))
}

func TestDashboardAPI(t *testing.T) {
	api := newAPI(t)
	reg := api.createRegister("Caja 1")
	s := api.openShift(reg.ID, cajeroID, "100")
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/shifts/"+s.ID+"/close", cajeroID, "cajero",
		map[string]any{"counted_amount": "90"}, nil))

	assert.Equal(t, http.StatusForbidden, api.do(http.MethodGet, "/api/dashboard/cash", cajeroID, "cajero", nil, nil))

	var out dto.CashDashboardResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/dashboard/cash", gerenteID, "gerente", nil, &out))
	assert.Equal(t, testLocationID, out.LocationID)
	assert.Equal(t, 1, out.Month.ClosedShifts)
	assert.Equal(t, 1, out.Month.ShortCount)
	assert.True(t, out.Month.NetDiscrepancy.Equal(decimal.NewFromInt(-10)), out.Month.NetDiscrepancy.String())
	assert.Equal(t, 0, out.OpenShifts)
}

package sqlite_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizhub-core/internal/application/dto"
	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
	"github.com/jhoicas/bizhub-core/internal/infrastructure/sqlite"
	"github.com/jhoicas/bizhub-core/pkg/logger"
)

const adminHash = "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9" // sha256("admin123")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func openStore(t *testing.T) (*sqlite.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bizhub.db")
	store, err := sqlite.Open(path, sqlite.Options{
		AdminUsername:     "admin",
		AdminPasswordHash: adminHash,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestOpen_SiembraAdminYEsIdempotente(t *testing.T) {
	store, path := openStore(t)

	ok, err := store.AuthenticateUser("admin", adminHash)
	require.NoError(t, err)
	assert.True(t, ok, "el admin sembrado debe autenticar con su digest")

	role, err := store.GetUserRole("admin")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)

	// Reabrir el mismo archivo no debe duplicar el admin ni fallar la migración.
	require.NoError(t, store.Close())
	again, err := sqlite.Open(path, sqlite.Options{
		AdminUsername:     "admin",
		AdminPasswordHash: adminHash,
	}, logger.Nop())
	require.NoError(t, err)
	defer again.Close()

	ok, err = again.AuthenticateUser("admin", adminHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOpen_RutaVacia(t *testing.T) {
	_, err := sqlite.Open("  ", sqlite.Options{}, logger.Nop())
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthenticateUser_DigestIncorrecto(t *testing.T) {
	store, _ := openStore(t)
	ok, err := store.AuthenticateUser("admin", "otrodigest")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInventory_RoundTripConDecimales(t *testing.T) {
	store, _ := openStore(t)

	require.NoError(t, store.AddInventoryItem(entity.InventoryItem{
		Name:        "Widget",
		Quantity:    10,
		Threshold:   3,
		CostPrice:   dec("4.50"),
		SalePrice:   dec("7.99"),
		Description: "pieza estándar",
	}))

	it, err := store.GetInventoryItem("Widget")
	require.NoError(t, err)
	assert.Equal(t, 10, it.Quantity)
	assert.True(t, dec("4.50").Equal(it.CostPrice), "el costo debe sobrevivir el viaje, fue %s", it.CostPrice)
	assert.True(t, dec("7.99").Equal(it.SalePrice))
	assert.Equal(t, "pieza estándar", it.Description)
}

func TestInventory_NombreDuplicado(t *testing.T) {
	store, _ := openStore(t)
	require.NoError(t, store.AddInventoryItem(entity.InventoryItem{Name: "Widget"}))
	err := store.AddInventoryItem(entity.InventoryItem{Name: "Widget"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "la restricción UNIQUE debe traducirse a ErrDuplicate")
}

func TestInventory_ParcheParcial(t *testing.T) {
	store, _ := openStore(t)
	require.NoError(t, store.AddInventoryItem(entity.InventoryItem{
		Name: "Widget", Quantity: 10, Threshold: 3, Description: "original",
	}))

	qty := 25
	require.NoError(t, store.UpdateInventoryItem("Widget", dto.InventoryPatch{Quantity: &qty}))

	it, err := store.GetInventoryItem("Widget")
	require.NoError(t, err)
	assert.Equal(t, 25, it.Quantity)
	assert.Equal(t, 3, it.Threshold, "los campos ausentes del parche se conservan")
	assert.Equal(t, "original", it.Description)
}

func TestInventory_NoExiste(t *testing.T) {
	store, _ := openStore(t)
	_, err := store.GetInventoryItem("Fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	qty := 1
	assert.ErrorIs(t, store.UpdateInventoryItem("Fantasma", dto.InventoryPatch{Quantity: &qty}), domain.ErrNotFound)
	assert.ErrorIs(t, store.DeleteInventoryItem("Fantasma"), domain.ErrNotFound)
}

func TestDecrementInventory(t *testing.T) {
	store, _ := openStore(t)
	require.NoError(t, store.AddInventoryItem(entity.InventoryItem{Name: "Widget", Quantity: 5}))

	require.NoError(t, store.DecrementInventory("Widget", 3))

	it, err := store.GetInventoryItem("Widget")
	require.NoError(t, err)
	assert.Equal(t, 2, it.Quantity)

	assert.ErrorIs(t, store.DecrementInventory("Widget", 3), domain.ErrConflict)
	assert.ErrorIs(t, store.DecrementInventory("Fantasma", 1), domain.ErrNotFound)
	assert.ErrorIs(t, store.DecrementInventory("Widget", 0), domain.ErrValidation)
}

func saleNow(item string, qty int, price string) entity.SaleRecord {
	p := dec(price)
	return entity.SaleRecord{
		ReceiptID:   "r-" + item,
		SaleDate:    time.Now().UTC(),
		ItemName:    item,
		Quantity:    qty,
		SalePrice:   p,
		TotalAmount: p.Mul(decimal.NewFromInt(int64(qty))),
		Username:    "admin",
	}
}

func TestCheckoutSale_DecrementaYRegistra(t *testing.T) {
	store, _ := openStore(t)
	require.NoError(t, store.AddInventoryItem(entity.InventoryItem{Name: "Widget", Quantity: 10}))

	require.NoError(t, store.CheckoutSale(saleNow("Widget", 4, "5")))

	it, err := store.GetInventoryItem("Widget")
	require.NoError(t, err)
	assert.Equal(t, 6, it.Quantity)

	sales, err := store.ListSales()
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.True(t, dec("20").Equal(sales[0].TotalAmount))
}

func TestCheckoutSale_StockInsuficiente_SinMutacion(t *testing.T) {
	store, _ := openStore(t)
	require.NoError(t, store.AddInventoryItem(entity.InventoryItem{Name: "Widget", Quantity: 2}))

	err := store.CheckoutSale(saleNow("Widget", 3, "5"))
	assert.ErrorIs(t, err, domain.ErrConflict)

	it, err := store.GetInventoryItem("Widget")
	require.NoError(t, err)
	assert.Equal(t, 2, it.Quantity, "el stock queda intacto tras el rechazo")

	sales, err := store.ListSales()
	require.NoError(t, err)
	assert.Empty(t, sales, "la venta no debe registrarse tras el rechazo")
}

func TestCheckoutSale_ArticuloInexistente(t *testing.T) {
	store, _ := openStore(t)
	err := store.CheckoutSale(saleNow("Fantasma", 1, "5"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSalesSummaryYTrend_AgrupanPorDia(t *testing.T) {
	store, _ := openStore(t)
	require.NoError(t, store.RecordSale(saleNow("A", 2, "10")))
	require.NoError(t, store.RecordSale(saleNow("A", 3, "10")))
	require.NoError(t, store.RecordSale(saleNow("B", 1, "99")))

	today := time.Now().UTC().Format("2006-01-02")

	summary, err := store.SalesSummaryByItem(today, today)
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, "A", summary[0].ItemName, "orden por cantidad descendente")
	assert.Equal(t, 5, summary[0].TotalQty)
	assert.True(t, dec("50").Equal(summary[0].TotalAmount))

	trend, err := store.SalesTrendByDay(today, today)
	require.NoError(t, err)
	require.Len(t, trend, 1)
	assert.Equal(t, today, trend[0].Day)
	assert.True(t, dec("149").Equal(trend[0].TotalAmount))

	byDay, err := store.SalesByDay(today)
	require.NoError(t, err)
	assert.Len(t, byDay, 3)
}

func TestPayroll_UpdateSobrescribeElRegistro(t *testing.T) {
	store, _ := openStore(t)

	id, err := store.AddPayroll(entity.PayrollRecord{
		EmployeeID: 1,
		BaseSalary: dec("3000"),
		Deductions: dec("350"),
		GrossPay:   dec("3000"),
		NetPay:     dec("2650"),
		Status:     entity.PayrollStatusDraft,
	})
	require.NoError(t, err)

	rec, err := store.GetPayroll(id)
	require.NoError(t, err)
	rec.BaseSalary = dec("3200")
	rec.GrossPay = dec("3200")
	rec.NetPay = dec("2850")
	rec.Status = entity.PayrollStatusFinalized
	require.NoError(t, store.UpdatePayroll(rec))

	got, err := store.GetPayroll(id)
	require.NoError(t, err)
	assert.True(t, dec("3200").Equal(got.BaseSalary))
	assert.True(t, dec("2850").Equal(got.NetPay))
	assert.Equal(t, entity.PayrollStatusFinalized, got.Status)
	assert.True(t, dec("350").Equal(got.Deductions), "los componentes no tocados se conservan")
}

func TestEmployees_NumeroUnicoYBajaLogica(t *testing.T) {
	store, _ := openStore(t)

	id, err := store.AddEmployee(entity.Employee{EmpNumber: "EMP-001", Name: "Ana", IsActive: true})
	require.NoError(t, err)

	_, err = store.AddEmployee(entity.Employee{EmpNumber: "EMP-001", Name: "Clon"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	inactive := false
	require.NoError(t, store.UpdateEmployee(id, dto.EmployeePatch{IsActive: &inactive}))

	emp, err := store.GetEmployee(id)
	require.NoError(t, err)
	assert.False(t, emp.IsActive)
	assert.Equal(t, "Ana", emp.Name)
}

func TestEmailConfig_SingletonReemplaza(t *testing.T) {
	store, _ := openStore(t)

	_, err := store.GetEmailConfig()
	assert.ErrorIs(t, err, domain.ErrNotFound, "sin configuración guardada")

	require.NoError(t, store.SaveEmailConfig(entity.EmailConfig{
		SMTPServer: "smtp.uno.com", SMTPPort: 587,
		SenderEmail: "a@uno.com", SenderPassword: "s", RecipientEmail: "b@uno.com",
	}))
	require.NoError(t, store.SaveEmailConfig(entity.EmailConfig{
		SMTPServer: "smtp.dos.com", SMTPPort: 465,
		SenderEmail: "a@dos.com", SenderPassword: "s", RecipientEmail: "b@dos.com",
	}))

	cfg, err := store.GetEmailConfig()
	require.NoError(t, err)
	assert.Equal(t, "smtp.dos.com", cfg.SMTPServer, "guardar reemplaza el registro anterior")
	assert.Equal(t, 465, cfg.SMTPPort)
}

func TestLeads_TagsSobrevivenElViaje(t *testing.T) {
	store, _ := openStore(t)

	id, err := store.CreateLead(entity.Lead{
		Name:   "Acme",
		Stage:  entity.LeadStageNew,
		Status: "active",
		Value:  dec("12000"),
		Tags:   []string{"caliente", "referido"},
		Score:  42.5,
	})
	require.NoError(t, err)

	lead, err := store.GetLead(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"caliente", "referido"}, lead.Tags)
	assert.True(t, dec("12000").Equal(lead.Value))
	assert.Equal(t, 42.5, lead.Score)

	tags := []string{"frio"}
	require.NoError(t, store.UpdateLead(id, dto.LeadPatch{Tags: &tags}))
	lead, err = store.GetLead(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"frio"}, lead.Tags)
}

func TestActivity_OrdenDescendenteYFiltro(t *testing.T) {
	store, _ := openStore(t)

	require.NoError(t, store.LogActivity("admin", "login", ""))
	require.NoError(t, store.LogActivity("ana", "sale", "Widget x2"))
	require.NoError(t, store.LogActivity("admin", "sale", "Gadget x1"))

	all, err := store.ListActivity("")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Gadget x1", all[0].Details, "el más reciente primero")

	admin, err := store.ListActivity("admin")
	require.NoError(t, err)
	assert.Len(t, admin, 2)
}

func TestVisitors_BusquedaPorTelefono(t *testing.T) {
	store, _ := openStore(t)

	_, err := store.AddVisitor(entity.Visitor{Name: "Carlos", Phone: "555-0101"})
	require.NoError(t, err)
	_, err = store.AddVisitor(entity.Visitor{Name: "Marta", Phone: "555-0202"})
	require.NoError(t, err)

	found, err := store.SearchVisitors("0101")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Carlos", found[0].Name)
}

func TestAppraisal_RoundTripDeParche(t *testing.T) {
	store, _ := openStore(t)

	id, err := store.CreateAppraisalCycle(entity.AppraisalCycle{
		EmployeeID: 1, Status: entity.AppraisalStatusDraft, CreatedBy: "admin",
	})
	require.NoError(t, err)

	status := entity.AppraisalStatusSelfSubmitted
	text := "mi autoevaluación"
	rating := 4.0
	require.NoError(t, store.UpdateAppraisalCycle(id, dto.AppraisalPatch{
		Status: &status, SelfText: &text, SelfRating: &rating,
	}))

	cycle, err := store.GetAppraisalCycle(id)
	require.NoError(t, err)
	assert.Equal(t, entity.AppraisalStatusSelfSubmitted, cycle.Status)
	assert.Equal(t, "mi autoevaluación", cycle.SelfText)
	assert.Equal(t, 4.0, cycle.SelfRating)
}

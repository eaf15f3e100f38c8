package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizhub-core/internal/application/dto"
	"github.com/jhoicas/bizhub-core/internal/application/usecase"
	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
	"github.com/jhoicas/bizhub-core/internal/infrastructure/memory"
	"github.com/jhoicas/bizhub-core/pkg/logger"
)

func newPayroll(t *testing.T) (*usecase.PayrollUseCase, *memory.Store) {
	t.Helper()
	store := memory.New()
	return usecase.NewPayrollUseCase(store, logger.Nop()), store
}

func TestCalculateGross_ConHorasExtra(t *testing.T) {
	got := usecase.CalculateGross(dec("3000"), dec("500"), dec("10"), dec("25"))
	assert.True(t, dec("3750").Equal(got), "3000 + 500 + 10×25 = 3750, fue %s", got)
}

func TestCalculateNet_RestaDeducciones(t *testing.T) {
	got := usecase.CalculateNet(dec("3750"), dec("350"))
	assert.True(t, dec("3400").Equal(got), "3750 − 350 = 3400, fue %s", got)
}

func TestAddPayroll_DerivaGrossYNet(t *testing.T) {
	uc, store := newPayroll(t)

	id, err := uc.AddPayroll(entity.PayrollRecord{
		EmployeeID:    1,
		PeriodStart:   "2026-08-01",
		PeriodEnd:     "2026-08-31",
		BaseSalary:    dec("3000"),
		Allowances:    dec("500"),
		Deductions:    dec("350"),
		OvertimeHours: dec("10"),
		OvertimeRate:  dec("25"),
		// Montos suministrados a mano: deben ignorarse y recalcularse.
		GrossPay: dec("1"),
		NetPay:   dec("1"),
	})
	require.NoError(t, err)

	rec, err := store.GetPayroll(id)
	require.NoError(t, err)
	assert.True(t, dec("3750").Equal(rec.GrossPay), "gross debe derivarse, fue %s", rec.GrossPay)
	assert.True(t, dec("3400").Equal(rec.NetPay), "net debe derivarse, fue %s", rec.NetPay)
	assert.Equal(t, entity.PayrollStatusDraft, rec.Status, "estado por defecto Draft")
}

func TestAddPayroll_RechazaComponentesNegativos(t *testing.T) {
	uc, _ := newPayroll(t)
	_, err := uc.AddPayroll(entity.PayrollRecord{
		EmployeeID: 1,
		BaseSalary: dec("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAddPayroll_EmpleadoObligatorio(t *testing.T) {
	uc, _ := newPayroll(t)
	_, err := uc.AddPayroll(entity.PayrollRecord{BaseSalary: dec("1000")})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// El parche parcial debe fusionarse sobre el registro vigente: los
// componentes no suministrados conservan su valor en el recálculo.
func TestUpdatePayroll_ParcheParcialConservaComponentes(t *testing.T) {
	uc, store := newPayroll(t)

	id, err := uc.AddPayroll(entity.PayrollRecord{
		EmployeeID:    1,
		BaseSalary:    dec("3000"),
		Allowances:    dec("500"),
		Deductions:    dec("350"),
		OvertimeHours: dec("10"),
		OvertimeRate:  dec("25"),
	})
	require.NoError(t, err)

	nuevaBase := dec("3200")
	require.NoError(t, uc.UpdatePayroll(id, dto.PayrollPatch{BaseSalary: &nuevaBase}))

	rec, err := store.GetPayroll(id)
	require.NoError(t, err)
	assert.True(t, dec("500").Equal(rec.Allowances), "allowances no tocadas deben conservarse")
	assert.True(t, dec("3950").Equal(rec.GrossPay), "gross = 3200 + 500 + 250, fue %s", rec.GrossPay)
	assert.True(t, dec("3600").Equal(rec.NetPay), "net = 3950 − 350, fue %s", rec.NetPay)
}

func TestUpdatePayroll_SoloEstadoNoRecalculaNadaRaro(t *testing.T) {
	uc, store := newPayroll(t)

	id, err := uc.AddPayroll(entity.PayrollRecord{
		EmployeeID: 1,
		BaseSalary: dec("1000"),
		Deductions: dec("100"),
	})
	require.NoError(t, err)

	paid := entity.PayrollStatusPaid
	fecha := "2026-08-31"
	require.NoError(t, uc.UpdatePayroll(id, dto.PayrollPatch{Status: &paid, PaidDate: &fecha}))

	rec, err := store.GetPayroll(id)
	require.NoError(t, err)
	assert.Equal(t, entity.PayrollStatusPaid, rec.Status)
	assert.Equal(t, "2026-08-31", rec.PaidDate)
	assert.True(t, dec("1000").Equal(rec.GrossPay), "gross intacto con parche solo de estado")
	assert.True(t, dec("900").Equal(rec.NetPay), "net intacto con parche solo de estado")
}

func TestUpdatePayroll_RechazaComponenteNegativo(t *testing.T) {
	uc, _ := newPayroll(t)

	id, err := uc.AddPayroll(entity.PayrollRecord{EmployeeID: 1, BaseSalary: dec("1000")})
	require.NoError(t, err)

	negativa := dec("-50")
	err = uc.UpdatePayroll(id, dto.PayrollPatch{Deductions: &negativa})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdatePayroll_NoExiste(t *testing.T) {
	uc, _ := newPayroll(t)
	paid := entity.PayrollStatusPaid
	err := uc.UpdatePayroll(999, dto.PayrollPatch{Status: &paid})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPayrollsByEmployee_FiltraPorEmpleado(t *testing.T) {
	uc, _ := newPayroll(t)

	_, err := uc.AddPayroll(entity.PayrollRecord{EmployeeID: 1, BaseSalary: dec("1000")})
	require.NoError(t, err)
	_, err = uc.AddPayroll(entity.PayrollRecord{EmployeeID: 2, BaseSalary: dec("2000")})
	require.NoError(t, err)

	recs, err := uc.PayrollsByEmployee(1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, int64(1), recs[0].EmployeeID)
}

package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/payroll-cli/internal/application/dto"
	"github.com/jhoicas/payroll-cli/internal/application/usecase"
	"github.com/jhoicas/payroll-cli/internal/domain"
	"github.com/jhoicas/payroll-cli/internal/infrastructure/memory"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newUC(t *testing.T) *usecase.PayrollUseCase {
	t.Helper()
	return usecase.NewPayrollUseCase(memory.NewEmployeeRepository(memory.DefaultCapacity), usecase.PayslipExport{}, nil)
}

func permanentReq(id, basic, bonus string) dto.AddEmployeeRequest {
	return dto.AddEmployeeRequest{Type: "Permanent", ID: id, Name: "P " + id, BasicSalary: dec(basic), Bonus: dec(bonus)}
}

func contractReq(id, basic string, months int) dto.AddEmployeeRequest {
	return dto.AddEmployeeRequest{Type: "Contract", ID: id, Name: "C " + id, BasicSalary: dec(basic), DurationMonths: months}
}

type fakeGenerator struct {
	got dto.EmployeeView
	err error
}

func (f *fakeGenerator) GeneratePayslipPDF(_ context.Context, p dto.EmployeeView) ([]byte, error) {
	f.got = p
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake " + p.ID), nil
}

// ── Add ───────────────────────────────────────────────────────────────────────

func TestAdd_EscenariosBase(t *testing.T) {
	uc := newUC(t)

	alice, err := uc.Add(permanentReq("E1", "1000", "100"))
	require.NoError(t, err)
	assert.Equal(t, "Permanent", alice.Type)
	assert.True(t, alice.Tax.Equal(dec("110")))
	assert.True(t, alice.Net.Equal(dec("990")))

	bob, err := uc.Add(contractReq("E2", "2000", 6))
	require.NoError(t, err)
	assert.Equal(t, "Contract", bob.Type)
	assert.Equal(t, 6, bob.DurationMonths)
	assert.True(t, bob.Tax.Equal(dec("100")))
	assert.True(t, bob.Net.Equal(dec("1900")))

	assert.Equal(t, 2, uc.Count())
}

func TestAdd_Rechazos(t *testing.T) {
	cases := []struct {
		name string
		req  dto.AddEmployeeRequest
		want error
	}{
		{"tipo inválido", dto.AddEmployeeRequest{Type: "Intern", ID: "X", BasicSalary: dec("10")}, domain.ErrInvalidType},
		{"salario cero", permanentReq("X", "0", "0"), domain.ErrNonPositiveSalary},
		{"salario negativo", contractReq("X", "-5", 3), domain.ErrNonPositiveSalary},
		{"bono negativo", permanentReq("X", "10", "-0.01"), domain.ErrNegativeBonus},
		{"duración cero", contractReq("X", "10", 0), domain.ErrNonPositiveDuration},
		{"duplicado", permanentReq("e1", "10", "0"), domain.ErrDuplicateID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newUC(t)
			_, err := uc.Add(permanentReq("E1", "1000", "0"))
			require.NoError(t, err)

			_, err = uc.Add(tc.req)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, 1, uc.Count(), "un rechazo no debe agregar empleados")
		})
	}
}

func TestAdd_BonoCeroEsValido(t *testing.T) {
	uc := newUC(t)
	_, err := uc.Add(permanentReq("E1", "1000", "0"))
	assert.NoError(t, err)
}

func TestAdd_TipoSinDistinguirMayusculas(t *testing.T) {
	uc := newUC(t)
	req := contractReq("E1", "1000", 2)
	req.Type = "  cONTRACT "
	v, err := uc.Add(req)
	require.NoError(t, err)
	assert.Equal(t, "Contract", v.Type)
}

func TestAdd_CapacidadMaxima(t *testing.T) {
	uc := newUC(t)
	for i := 1; i <= 5; i++ {
		_, err := uc.Add(contractReq(fmt.Sprintf("E%d", i), "100", 1))
		require.NoError(t, err)
	}
	assert.ErrorIs(t, uc.CanAdd(), domain.ErrCapacityExceeded)

	_, err := uc.Add(contractReq("E6", "100", 1))
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.Equal(t, 5, uc.Count())
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func TestFind(t *testing.T) {
	uc := newUC(t)
	_, err := uc.Add(permanentReq("E1", "1000", "100"))
	require.NoError(t, err)

	v, err := uc.Find("e1")
	require.NoError(t, err)
	assert.Equal(t, "E1", v.ID)

	_, err = uc.Find("E9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHighest_EmpateGanaElPrimero(t *testing.T) {
	uc := newUC(t)
	_, err := uc.Highest()
	assert.ErrorIs(t, err, domain.ErrEmptyRoster)

	// E1 y E3 tienen el mismo neto (990); E2 menor
	for _, req := range []dto.AddEmployeeRequest{
		permanentReq("E1", "1000", "100"),
		contractReq("E2", "100", 1),
		permanentReq("E3", "1050", "50"),
	} {
		_, err := uc.Add(req)
		require.NoError(t, err)
	}

	best, err := uc.Highest()
	require.NoError(t, err)
	assert.Equal(t, "E1", best.ID)
}

func TestAverage(t *testing.T) {
	uc := newUC(t)
	_, err := uc.Average()
	assert.ErrorIs(t, err, domain.ErrEmptyRoster)
	assert.False(t, uc.Summary().HasAverage)

	_, err = uc.Add(permanentReq("E1", "1000", "100"))
	require.NoError(t, err)
	_, err = uc.Add(contractReq("E2", "2000", 6))
	require.NoError(t, err)

	avg, err := uc.Average()
	require.NoError(t, err)
	assert.True(t, avg.Equal(dec("1445")), "avg = %s", avg)

	s := uc.Summary()
	assert.Equal(t, 2, s.Total)
	assert.True(t, s.HasAverage)
	assert.True(t, s.AverageNet.Equal(dec("1445")))
}

func TestList_OrdenDeInsercion(t *testing.T) {
	uc := newUC(t)
	for _, id := range []string{"B", "A", "C"} {
		_, err := uc.Add(contractReq(id, "100", 1))
		require.NoError(t, err)
	}
	var ids []string
	for v := range uc.List() {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"B", "A", "C"}, ids)
}

// ── Exportación PDF ───────────────────────────────────────────────────────────

func TestExportPayslip_Deshabilitada(t *testing.T) {
	uc := newUC(t)
	assert.False(t, uc.ExportEnabled())
	_, err := uc.ExportPayslip(context.Background(), "E1")
	assert.ErrorIs(t, err, domain.ErrExportDisabled)
}

func TestExportPayslip_EscribeArchivo(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	gen := &fakeGenerator{}
	uc := usecase.NewPayrollUseCase(
		memory.NewEmployeeRepository(memory.DefaultCapacity),
		usecase.PayslipExport{Generator: gen, Dir: dir},
		nil,
	)
	_, err := uc.Add(permanentReq("E/1", "1000", "100"))
	require.NoError(t, err)

	path, err := uc.ExportPayslip(context.Background(), "e/1")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "payslip_E_1.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake E/1", string(data))
	assert.True(t, gen.got.Net.Equal(dec("990")))
}

func TestExportPayslip_Errores(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("boom")}
	uc := usecase.NewPayrollUseCase(
		memory.NewEmployeeRepository(memory.DefaultCapacity),
		usecase.PayslipExport{Generator: gen, Dir: t.TempDir()},
		nil,
	)

	_, err := uc.ExportPayslip(context.Background(), "E1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Add(contractReq("E1", "100", 1))
	require.NoError(t, err)
	_, err = uc.ExportPayslip(context.Background(), "E1")
	assert.ErrorContains(t, err, "boom")
}

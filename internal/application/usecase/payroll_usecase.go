package usecase

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/payroll-cli/internal/application/dto"
	"github.com/jhoicas/payroll-cli/internal/domain"
	"github.com/jhoicas/payroll-cli/internal/domain/entity"
	"github.com/jhoicas/payroll-cli/internal/domain/payroll"
	"github.com/jhoicas/payroll-cli/internal/domain/repository"
	"github.com/jhoicas/payroll-cli/pkg/logger"
)

// PayslipExport destino de los PDF. Generator nil o Dir vacío = exportación deshabilitada.
type PayslipExport struct {
	Generator PayslipPDFGenerator
	Dir       string
}

// PayrollUseCase casos de uso del padrón: alta validada, consultas y liquidación.
type PayrollUseCase struct {
	repo   repository.EmployeeRepository
	export PayslipExport
	log    *logger.Logger
}

// NewPayrollUseCase construye el caso de uso.
func NewPayrollUseCase(repo repository.EmployeeRepository, export PayslipExport, log *logger.Logger) *PayrollUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &PayrollUseCase{repo: repo, export: export, log: log}
}

// CanAdd verifica cupo antes de iniciar la captura de datos.
func (uc *PayrollUseCase) CanAdd() error {
	if uc.repo.Size() >= uc.repo.Capacity() {
		return domain.ErrCapacityExceeded
	}
	return nil
}

// Capacity máximo de empleados admitidos.
func (uc *PayrollUseCase) Capacity() int { return uc.repo.Capacity() }

// ParseType interpreta el tipo sin distinguir mayúsculas.
func (uc *PayrollUseCase) ParseType(raw string) (entity.EmployeeType, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case strings.EqualFold(raw, string(entity.EmployeeTypePermanent)):
		return entity.EmployeeTypePermanent, nil
	case strings.EqualFold(raw, string(entity.EmployeeTypeContract)):
		return entity.EmployeeTypeContract, nil
	default:
		return "", domain.ErrInvalidType
	}
}

// CheckID retorna ErrDuplicateID si el ID ya está registrado.
func (uc *PayrollUseCase) CheckID(id string) error {
	if _, err := uc.repo.FindByID(strings.TrimSpace(id)); err == nil {
		return domain.ErrDuplicateID
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

// ValidateSalary el salario básico debe ser > 0.
func (uc *PayrollUseCase) ValidateSalary(v decimal.Decimal) error {
	if !v.IsPositive() {
		return domain.ErrNonPositiveSalary
	}
	return nil
}

// ValidateBonus la bonificación debe ser >= 0.
func (uc *PayrollUseCase) ValidateBonus(v decimal.Decimal) error {
	if v.IsNegative() {
		return domain.ErrNegativeBonus
	}
	return nil
}

// ValidateDuration la duración del contrato (meses) debe ser > 0.
func (uc *PayrollUseCase) ValidateDuration(months int) error {
	if months <= 0 {
		return domain.ErrNonPositiveDuration
	}
	return nil
}

// Add valida la solicitud completa y registra al empleado.
func (uc *PayrollUseCase) Add(in dto.AddEmployeeRequest) (*dto.EmployeeView, error) {
	if err := uc.CanAdd(); err != nil {
		return nil, err
	}
	in.ID = strings.TrimSpace(in.ID)
	typ, err := uc.ParseType(in.Type)
	if err != nil {
		return nil, err
	}
	if err := uc.CheckID(in.ID); err != nil {
		return nil, err
	}
	if err := uc.ValidateSalary(in.BasicSalary); err != nil {
		return nil, err
	}

	var employee *entity.Employee
	switch typ {
	case entity.EmployeeTypePermanent:
		if err := uc.ValidateBonus(in.Bonus); err != nil {
			return nil, err
		}
		employee = entity.NewPermanent(in.ID, in.Name, in.BasicSalary, in.Bonus)
	case entity.EmployeeTypeContract:
		if err := uc.ValidateDuration(in.DurationMonths); err != nil {
			return nil, err
		}
		employee = entity.NewContract(in.ID, in.Name, in.BasicSalary, in.DurationMonths)
	}

	if err := uc.repo.Add(employee); err != nil {
		return nil, fmt.Errorf("registrar empleado %q: %w", in.ID, err)
	}
	uc.log.Info().
		Str("employee_id", employee.ID).
		Str("type", string(typ)).
		Int("size", uc.repo.Size()).
		Msg("empleado agregado")
	return toEmployeeView(employee), nil
}

// Find busca por ID (sin distinguir mayúsculas).
func (uc *PayrollUseCase) Find(id string) (*dto.EmployeeView, error) {
	employee, err := uc.repo.FindByID(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	return toEmployeeView(employee), nil
}

// List recorre el padrón en orden de inserción con la liquidación calculada.
func (uc *PayrollUseCase) List() iter.Seq[dto.EmployeeView] {
	return func(yield func(dto.EmployeeView) bool) {
		for e := range uc.repo.All() {
			if !yield(*toEmployeeView(e)) {
				return
			}
		}
	}
}

// Highest empleado con mayor neto; ante empate gana el primero insertado.
func (uc *PayrollUseCase) Highest() (*dto.EmployeeView, error) {
	var best *dto.EmployeeView
	for v := range uc.List() {
		if best == nil || v.Net.GreaterThan(best.Net) {
			best = &v
		}
	}
	if best == nil {
		return nil, domain.ErrEmptyRoster
	}
	return best, nil
}

// Average media aritmética del neto; ErrEmptyRoster si no hay empleados.
func (uc *PayrollUseCase) Average() (decimal.Decimal, error) {
	nets := make([]decimal.Decimal, 0, uc.repo.Size())
	for e := range uc.repo.All() {
		nets = append(nets, payroll.NetSalary(e))
	}
	if len(nets) == 0 {
		return decimal.Zero, domain.ErrEmptyRoster
	}
	return payroll.Average(nets), nil
}

// Count cantidad de empleados registrados.
func (uc *PayrollUseCase) Count() int { return uc.repo.Size() }

// Summary total de empleados y promedio (si hay alguno) para el cierre de sesión.
func (uc *PayrollUseCase) Summary() dto.RosterSummary {
	s := dto.RosterSummary{Total: uc.Count()}
	if avg, err := uc.Average(); err == nil {
		s.AverageNet = avg
		s.HasAverage = true
	}
	return s
}

// ExportEnabled indica si hay generador y directorio configurados.
func (uc *PayrollUseCase) ExportEnabled() bool {
	return uc.export.Generator != nil && uc.export.Dir != ""
}

// ExportPayslip genera el PDF del comprobante y lo escribe en <Dir>/payslip_<ID>.pdf.
//
// Retorna:
//   - (path, nil)             si todo sale bien.
//   - domain.ErrExportDisabled si no hay generador o directorio.
//   - domain.ErrNotFound       si el empleado no existe.
func (uc *PayrollUseCase) ExportPayslip(ctx context.Context, id string) (string, error) {
	if !uc.ExportEnabled() {
		return "", domain.ErrExportDisabled
	}
	view, err := uc.Find(id)
	if err != nil {
		return "", err
	}

	pdfBytes, err := uc.export.Generator.GeneratePayslipPDF(ctx, *view)
	if err != nil {
		return "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	if err := os.MkdirAll(uc.export.Dir, 0o755); err != nil {
		return "", fmt.Errorf("pdf: crear directorio: %w", err)
	}
	path := filepath.Join(uc.export.Dir, payslipFilename(view.ID))
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		return "", fmt.Errorf("pdf: escribir archivo: %w", err)
	}
	uc.log.Info().Str("employee_id", view.ID).Str("path", path).Msg("comprobante PDF exportado")
	return path, nil
}

// payslipFilename nombre de archivo seguro a partir del ID capturado por consola.
func payslipFilename(id string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, id)
	return "payslip_" + safe + ".pdf"
}

func toEmployeeView(e *entity.Employee) *dto.EmployeeView {
	v := &dto.EmployeeView{
		ID:          e.ID,
		Name:        e.Name,
		Type:        string(e.Type()),
		BasicSalary: e.BasicSalary,
		Gross:       payroll.Gross(e),
		Tax:         payroll.Tax(e),
		Net:         payroll.NetSalary(e),
	}
	switch t := e.Terms.(type) {
	case entity.PermanentTerms:
		v.Bonus = t.Bonus
	case entity.ContractTerms:
		v.DurationMonths = t.DurationMonths
	}
	return v
}

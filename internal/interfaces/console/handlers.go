package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jhoicas/payroll-cli/internal/application/dto"
	"github.com/jhoicas/payroll-cli/internal/application/usecase"
	"github.com/jhoicas/payroll-cli/internal/domain"
	"github.com/jhoicas/payroll-cli/internal/domain/entity"
	"github.com/jhoicas/payroll-cli/pkg/logger"
)

// errSessionEnded señal interna: la opción 7 terminó la sesión.
var errSessionEnded = errors.New("console: sesión finalizada")

// Handler operaciones del menú sobre el caso de uso de nómina.
type Handler struct {
	uc  *usecase.PayrollUseCase
	in  *Prompter
	out io.Writer
	log *logger.Logger
}

// NewHandler construye el handler.
func NewHandler(uc *usecase.PayrollUseCase, in *Prompter, out io.Writer, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{uc: uc, in: in, out: out, log: log}
}

// AddEmployee flujo de alta: tipo → ID → nombre → salario → bono/duración.
// Cualquier rechazo aborta el alta completa y vuelve al menú.
func (h *Handler) AddEmployee(ctx context.Context) error {
	if err := h.uc.CanAdd(); err != nil {
		return h.reject(err)
	}

	rawType, err := h.in.Line(ctx, "Enter Employee Type (Permanent/Contract): ")
	if err != nil {
		return err
	}
	typ, err := h.uc.ParseType(rawType)
	if err != nil {
		return h.reject(err)
	}

	req := dto.AddEmployeeRequest{Type: string(typ)}
	if req.ID, err = h.in.Line(ctx, "Enter ID: "); err != nil {
		return err
	}
	if err := h.uc.CheckID(req.ID); err != nil {
		return h.reject(err)
	}
	if req.Name, err = h.in.Line(ctx, "Enter Name: "); err != nil {
		return err
	}

	if req.BasicSalary, err = h.in.Decimal(ctx, "Enter Basic Salary: "); err != nil {
		return h.reject(err)
	}
	if err := h.uc.ValidateSalary(req.BasicSalary); err != nil {
		return h.reject(err)
	}

	switch typ {
	case entity.EmployeeTypePermanent:
		if req.Bonus, err = h.in.Decimal(ctx, "Enter Bonus: "); err != nil {
			return h.reject(err)
		}
	case entity.EmployeeTypeContract:
		if req.DurationMonths, err = h.in.Int(ctx, "Enter Contract Duration (in months): "); err != nil {
			return h.reject(err)
		}
	}

	if _, err := h.uc.Add(req); err != nil {
		return h.reject(err)
	}
	fmt.Fprintln(h.out, "Employee added successfully!")
	return nil
}

// ListEmployees tabla de ancho fijo con la liquidación de cada empleado.
func (h *Handler) ListEmployees(_ context.Context) error {
	if h.uc.Count() == 0 {
		fmt.Fprintln(h.out, "No employees found!")
		return nil
	}
	writeTableHeader(h.out)
	for v := range h.uc.List() {
		writeTableRow(h.out, v)
	}
	return nil
}

// Payslip pide un ID e imprime su comprobante; compartido por "Search Employee" y "Generate Payslip".
func (h *Handler) Payslip(prompt string) HandlerFunc {
	return func(ctx context.Context) error {
		id, err := h.in.Line(ctx, prompt)
		if err != nil {
			return err
		}
		view, err := h.uc.Find(id)
		if err != nil {
			return h.reject(err)
		}
		h.printPayslip(ctx, *view)
		return nil
	}
}

// HighestNetSalary comprobante del empleado con mayor neto (el primero ante empates).
func (h *Handler) HighestNetSalary(ctx context.Context) error {
	view, err := h.uc.Highest()
	if errors.Is(err, domain.ErrEmptyRoster) {
		fmt.Fprintln(h.out, "No employees to evaluate!")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(h.out, "Employee with Highest Net Salary:")
	h.printPayslip(ctx, *view)
	return nil
}

// AverageSalary promedio del neto de todos los empleados.
func (h *Handler) AverageSalary(_ context.Context) error {
	avg, err := h.uc.Average()
	if errors.Is(err, domain.ErrEmptyRoster) {
		fmt.Fprintln(h.out, "No employees to calculate average!")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(h.out, "Average Net Salary: "+plain(avg))
	return nil
}

// Exit imprime el resumen de cierre y termina la sesión.
func (h *Handler) Exit(_ context.Context) error {
	h.farewell()
	return errSessionEnded
}

func (h *Handler) farewell() {
	summary := h.uc.Summary()
	fmt.Fprintln(h.out, "Exiting program...")
	fmt.Fprintf(h.out, "Total Employees: %d\n", summary.Total)
	if summary.HasAverage {
		fmt.Fprintln(h.out, "Average Net Salary: "+plain(summary.AverageNet))
	}
	fmt.Fprintln(h.out, "Goodbye!")
}

// printPayslip imprime el comprobante y, si está habilitado, lo exporta a PDF.
func (h *Handler) printPayslip(ctx context.Context, v dto.EmployeeView) {
	writePayslip(h.out, v)
	if !h.uc.ExportEnabled() {
		return
	}
	path, err := h.uc.ExportPayslip(ctx, v.ID)
	if err != nil {
		h.log.Warn().Err(err).Str("employee_id", v.ID).Msg("exportar comprobante PDF")
		fmt.Fprintln(h.out, "Could not export payslip PDF!")
		return
	}
	fmt.Fprintln(h.out, "Payslip PDF saved to "+path)
}

// reject imprime el mensaje del error de validación y vuelve al menú.
// Errores de E/S (incluido io.EOF) se propagan.
func (h *Handler) reject(err error) error {
	msg, ok := h.message(err)
	if !ok {
		return err
	}
	h.log.Debug().Err(err).Msg("operación rechazada")
	fmt.Fprintln(h.out, msg)
	return nil
}

func (h *Handler) message(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrCapacityExceeded):
		return fmt.Sprintf("Maximum limit of %d employees reached!", h.uc.Capacity()), true
	case errors.Is(err, domain.ErrInvalidType):
		return "Invalid Employee Type!", true
	case errors.Is(err, domain.ErrDuplicateID):
		return "Employee ID already exists!", true
	case errors.Is(err, domain.ErrNonPositiveSalary):
		return "Salary must be positive!", true
	case errors.Is(err, domain.ErrNegativeBonus):
		return "Bonus must be positive!", true
	case errors.Is(err, domain.ErrNonPositiveDuration):
		return "Duration must be positive!", true
	case errors.Is(err, domain.ErrInvalidNumber):
		return "Invalid number!", true
	case errors.Is(err, domain.ErrNotFound):
		return "Employee not found!", true
	case errors.Is(err, domain.ErrInvalidMenuChoice):
		return "Invalid choice! Try again.", true
	default:
		return "", false
	}
}

package usecase

import (
	"context"

	"github.com/jhoicas/payroll-cli/internal/application/dto"
)

// PayslipPDFGenerator puerto para la representación PDF de un comprobante de pago.
type PayslipPDFGenerator interface {
	GeneratePayslipPDF(ctx context.Context, payslip dto.EmployeeView) ([]byte, error)
}

// Package pdf implementa la representación PDF del comprobante de pago (payslip).
//
// Layout de la página A5:
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: Payslip (<Tipo> Employee) │ ID       │
//	│  ─────────────────────────────────────────── │
//	│  EMPLEADO: Nombre                            │
//	│  ─────────────────────────────────────────── │
//	│  Basic Salary | Bonus / Contract Duration    │
//	│  Tax                                         │
//	│  ─────────────────────────────────────────── │
//	│  NET SALARY                                  │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/payroll-cli/internal/application/dto"
	"github.com/jhoicas/payroll-cli/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.PayslipPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador; author va en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// GeneratePayslipPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GeneratePayslipPDF(_ context.Context, p dto.EmployeeView) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Payslip "+p.ID, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(employeeRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range amountRows(p) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(netRow(p))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(p dto.EmployeeView) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("Payslip (%s Employee)", p.Type), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("ID: "+p.ID, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
		),
	)
}

func employeeRow(p dto.EmployeeView) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Name: "+nonEmpty(p.Name, "-"), props.Text{Size: 10, Top: 2}),
		),
	)
}

// amountRows: salario básico, campo propio del tipo e impuesto.
func amountRows(p dto.EmployeeView) []core.Row {
	rows := []core.Row{amountRow("Basic Salary", p.BasicSalary.StringFixed(2))}
	switch entity.EmployeeType(p.Type) {
	case entity.EmployeeTypePermanent:
		rows = append(rows, amountRow("Bonus", p.Bonus.StringFixed(2)))
	case entity.EmployeeTypeContract:
		rows = append(rows, amountRow("Contract Duration", fmt.Sprintf("%d months", p.DurationMonths)))
	}
	rows = append(rows, amountRow("Tax", p.Tax.StringFixed(2)))
	return rows
}

func amountRow(label, value string) core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New(label+":", props.Text{Size: 9, Color: colorGray, Top: 1})),
		col.New(6).Add(text.New(value, props.Text{Size: 9, Align: align.Right, Top: 1})),
	)
}

func netRow(p dto.EmployeeView) core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New("NET SALARY:", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		})),
		col.New(6).Add(text.New(p.Net.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

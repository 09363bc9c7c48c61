// Package payroll contiene las reglas de cálculo de nómina (servicio de dominio puro).
//
//	Planta:   Impuesto = 10% * (Básico + Bono)   Neto = (Básico + Bono) - Impuesto
//	Contrato: Impuesto =  5% * Básico            Neto = Básico - Impuesto
package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/payroll-cli/internal/domain/entity"
)

// Tasas fijas de retención.
var (
	PermanentTaxRate = decimal.RequireFromString("0.10")
	ContractTaxRate  = decimal.RequireFromString("0.05")
)

// Gross devuelve la base gravable: básico + bono (planta) o básico (contrato).
func Gross(e *entity.Employee) decimal.Decimal {
	switch t := e.Terms.(type) {
	case entity.PermanentTerms:
		return e.BasicSalary.Add(t.Bonus)
	case entity.ContractTerms:
		return e.BasicSalary
	default:
		return decimal.Zero
	}
}

// Tax calcula el impuesto según el tipo de vinculación.
func Tax(e *entity.Employee) decimal.Decimal {
	switch e.Terms.(type) {
	case entity.PermanentTerms:
		return PermanentTaxRate.Mul(Gross(e))
	case entity.ContractTerms:
		return ContractTaxRate.Mul(Gross(e))
	default:
		return decimal.Zero
	}
}

// NetSalary = Gross - Tax.
func NetSalary(e *entity.Employee) decimal.Decimal {
	return Gross(e).Sub(Tax(e))
}

// AveragePlaces decimales del promedio cuando la división no es exacta.
const AveragePlaces = 14

// Average media aritmética redondeada a AveragePlaces; cero si values está vacío
// (el caller decide cómo reportarlo).
func Average(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	return decimal.Sum(values[0], values[1:]...).DivRound(decimal.NewFromInt(int64(len(values))), AveragePlaces)
}

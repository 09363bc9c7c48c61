package dto

import "github.com/shopspring/decimal"

// AddEmployeeRequest datos capturados por el flujo "Add Employee".
// Bonus aplica solo a planta; DurationMonths solo a contrato.
type AddEmployeeRequest struct {
	Type           string
	ID             string
	Name           string
	BasicSalary    decimal.Decimal
	Bonus          decimal.Decimal
	DurationMonths int
}

// EmployeeView empleado con su liquidación ya calculada; entrada única de tablas y comprobantes.
type EmployeeView struct {
	ID             string
	Name           string
	Type           string
	BasicSalary    decimal.Decimal
	Bonus          decimal.Decimal
	DurationMonths int
	Gross          decimal.Decimal
	Tax            decimal.Decimal
	Net            decimal.Decimal
}

// RosterSummary resumen mostrado al salir.
type RosterSummary struct {
	Total      int
	AverageNet decimal.Decimal
	HasAverage bool
}

package entity

import (
	"github.com/shopspring/decimal"
)

// EmployeeType tipo de vinculación; define la política de impuestos aplicable.
type EmployeeType string

const (
	EmployeeTypePermanent EmployeeType = "Permanent"
	EmployeeTypeContract  EmployeeType = "Contract"
)

// Terms condiciones propias de cada tipo de empleado.
// Unión cerrada: solo PermanentTerms y ContractTerms la implementan.
type Terms interface {
	employeeType() EmployeeType
}

// PermanentTerms empleado de planta: salario básico + bonificación.
type PermanentTerms struct {
	Bonus decimal.Decimal // >= 0
}

func (PermanentTerms) employeeType() EmployeeType { return EmployeeTypePermanent }

// ContractTerms empleado por contrato a término fijo.
type ContractTerms struct {
	DurationMonths int // > 0
}

func (ContractTerms) employeeType() EmployeeType { return EmployeeTypeContract }

// Employee representa un registro de nómina. Inmutable tras su creación.
type Employee struct {
	ID          string // único sin distinguir mayúsculas/minúsculas
	Name        string
	BasicSalary decimal.Decimal // > 0
	Terms       Terms
}

// NewPermanent construye un empleado de planta (sin validar; eso lo hace el caso de uso).
func NewPermanent(id, name string, basicSalary, bonus decimal.Decimal) *Employee {
	return &Employee{ID: id, Name: name, BasicSalary: basicSalary, Terms: PermanentTerms{Bonus: bonus}}
}

// NewContract construye un empleado por contrato.
func NewContract(id, name string, basicSalary decimal.Decimal, durationMonths int) *Employee {
	return &Employee{ID: id, Name: name, BasicSalary: basicSalary, Terms: ContractTerms{DurationMonths: durationMonths}}
}

// Type devuelve el tipo de vinculación según sus condiciones.
func (e *Employee) Type() EmployeeType {
	if e.Terms == nil {
		return ""
	}
	return e.Terms.employeeType()
}

package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/payroll-cli/internal/application/dto"
	"github.com/jhoicas/payroll-cli/internal/domain/entity"
)

const menuText = `
Welcome to Employee Payroll Management System
1. Add Employee
2. View All Employees
3. Search Employee
4. Highest Net Salary
5. Average Salary
6. Generate Payslip
7. Exit
`

const menuPrompt = "Choose an option: "

// Bordes del comprobante; cada tipo tiene su propio ancho.
const (
	permanentHeader = "----- Payslip (Permanent Employee) -----"
	permanentFooter = "----------------------------------------"
	contractHeader  = "----- Payslip (Contract Employee) -----"
	contractFooter  = "--------------------------------------"
)

const tableFormat = "%-10s %-15s %-15s %-15s %-15s %-15s %-15s\n"

func writeTableHeader(w io.Writer) {
	fmt.Fprintf(w, tableFormat, "ID", "Name", "Type", "Basic Salary", "Bonus/Duration", "Tax", "Net Salary")
}

func writeTableRow(w io.Writer, v dto.EmployeeView) {
	fmt.Fprintf(w, tableFormat,
		v.ID, v.Name, v.Type,
		v.BasicSalary.StringFixed(2),
		termsColumn(v),
		v.Tax.StringFixed(2),
		v.Net.StringFixed(2),
	)
}

// termsColumn bono para planta, "<N> months" para contrato.
func termsColumn(v dto.EmployeeView) string {
	if entity.EmployeeType(v.Type) == entity.EmployeeTypeContract {
		return fmt.Sprintf("%d months", v.DurationMonths)
	}
	return plain(v.Bonus)
}

func writePayslip(w io.Writer, v dto.EmployeeView) {
	header, footer := permanentHeader, permanentFooter
	if entity.EmployeeType(v.Type) == entity.EmployeeTypeContract {
		header, footer = contractHeader, contractFooter
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, "ID: "+v.ID)
	fmt.Fprintln(w, "Name: "+v.Name)
	fmt.Fprintln(w, "Basic Salary: "+plain(v.BasicSalary))
	switch entity.EmployeeType(v.Type) {
	case entity.EmployeeTypePermanent:
		fmt.Fprintln(w, "Bonus: "+plain(v.Bonus))
	case entity.EmployeeTypeContract:
		fmt.Fprintf(w, "Contract Duration: %d months\n", v.DurationMonths)
	}
	fmt.Fprintln(w, "Tax: "+plain(v.Tax))
	fmt.Fprintln(w, "Net Salary: "+plain(v.Net))
	fmt.Fprintln(w, footer)
}

// plain representación exacta sin redondeo y con al menos un decimal: 990 -> "990.0".
func plain(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

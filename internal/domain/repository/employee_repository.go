package repository

import (
	"iter"

	"github.com/jhoicas/payroll-cli/internal/domain/entity"
)

// EmployeeRepository define el puerto del padrón de empleados (DIP).
// Add retorna domain.ErrCapacityExceeded o domain.ErrDuplicateID;
// FindByID retorna domain.ErrNotFound.
type EmployeeRepository interface {
	Add(employee *entity.Employee) error
	FindByID(id string) (*entity.Employee, error)
	// All recorre los empleados en orden de inserción; cada llamada inicia un recorrido nuevo.
	All() iter.Seq[*entity.Employee]
	Size() int
	Capacity() int
}

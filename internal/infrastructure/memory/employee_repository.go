// Package memory implementa los repositorios en memoria del proceso.
// Los datos viven mientras viva la sesión de consola.
package memory

import (
	"iter"

	"golang.org/x/text/cases"

	"github.com/jhoicas/payroll-cli/internal/domain"
	"github.com/jhoicas/payroll-cli/internal/domain/entity"
)

// DefaultCapacity máximo de empleados del padrón.
const DefaultCapacity = 5

// EmployeeRepository implementa repository.EmployeeRepository sobre un slice.
// No es seguro para uso concurrente: lo posee un único controlador de consola.
type EmployeeRepository struct {
	capacity  int
	employees []*entity.Employee
}

// NewEmployeeRepository construye el padrón. Los registros de seed se cargan tal cual,
// sin validar unicidad ni capacidad.
func NewEmployeeRepository(capacity int, seed ...*entity.Employee) *EmployeeRepository {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	employees := make([]*entity.Employee, 0, max(capacity, len(seed)))
	employees = append(employees, seed...)
	return &EmployeeRepository{capacity: capacity, employees: employees}
}

// Add agrega al final. La capacidad se valida antes que el duplicado.
func (r *EmployeeRepository) Add(employee *entity.Employee) error {
	if len(r.employees) >= r.capacity {
		return domain.ErrCapacityExceeded
	}
	if _, err := r.FindByID(employee.ID); err == nil {
		return domain.ErrDuplicateID
	}
	r.employees = append(r.employees, employee)
	return nil
}

// FindByID búsqueda sin distinguir mayúsculas (case folding Unicode); primera coincidencia.
func (r *EmployeeRepository) FindByID(id string) (*entity.Employee, error) {
	key := foldID(id)
	for _, e := range r.employees {
		if foldID(e.ID) == key {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

// All devuelve un iterador perezoso sobre una instantánea del padrón.
func (r *EmployeeRepository) All() iter.Seq[*entity.Employee] {
	return func(yield func(*entity.Employee) bool) {
		for _, e := range r.employees {
			if !yield(e) {
				return
			}
		}
	}
}

func (r *EmployeeRepository) Size() int { return len(r.employees) }

func (r *EmployeeRepository) Capacity() int { return r.capacity }

func foldID(id string) string {
	return cases.Fold().String(id)
}

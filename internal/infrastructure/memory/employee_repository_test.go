package memory_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/payroll-cli/internal/domain"
	"github.com/jhoicas/payroll-cli/internal/domain/entity"
	"github.com/jhoicas/payroll-cli/internal/infrastructure/memory"
)

func permanent(id string) *entity.Employee {
	return entity.NewPermanent(id, "Nombre "+id, decimal.NewFromInt(1000), decimal.NewFromInt(100))
}

func collectIDs(r *memory.EmployeeRepository) []string {
	var ids []string
	for e := range r.All() {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestAdd_PreservaOrdenDeInsercion(t *testing.T) {
	repo := memory.NewEmployeeRepository(memory.DefaultCapacity)
	for _, id := range []string{"E3", "E1", "E2"} {
		require.NoError(t, repo.Add(permanent(id)))
	}
	assert.Equal(t, []string{"E3", "E1", "E2"}, collectIDs(repo))
	assert.Equal(t, 3, repo.Size())
}

func TestAdd_DuplicadoSinDistinguirMayusculas(t *testing.T) {
	repo := memory.NewEmployeeRepository(memory.DefaultCapacity)
	require.NoError(t, repo.Add(permanent("E1")))

	err := repo.Add(permanent("e1"))
	assert.ErrorIs(t, err, domain.ErrDuplicateID)
	assert.Equal(t, 1, repo.Size())
}

func TestAdd_SextoEmpleadoExcedeCapacidad(t *testing.T) {
	repo := memory.NewEmployeeRepository(memory.DefaultCapacity)
	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Add(permanent(fmt.Sprintf("E%d", i))))
	}

	assert.ErrorIs(t, repo.Add(permanent("E6")), domain.ErrCapacityExceeded)
	// aunque el sexto sea además un duplicado, se reporta capacidad
	assert.ErrorIs(t, repo.Add(permanent("e1")), domain.ErrCapacityExceeded)
	assert.Equal(t, 5, repo.Size())
}

func TestFindByID(t *testing.T) {
	repo := memory.NewEmployeeRepository(memory.DefaultCapacity)
	require.NoError(t, repo.Add(permanent("Émile-7")))

	got, err := repo.FindByID("éMILE-7")
	require.NoError(t, err, "el case folding Unicode aplica también a letras acentuadas")
	assert.Equal(t, "Émile-7", got.ID)

	_, err = repo.FindByID("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Con registros cargados directamente (sin pasar por Add) la búsqueda devuelve el primero.
func TestFindByID_PrimeraCoincidencia(t *testing.T) {
	first := permanent("E1")
	second := entity.NewContract("e1", "Otro", decimal.NewFromInt(500), 3)
	repo := memory.NewEmployeeRepository(memory.DefaultCapacity, first, second)

	got, err := repo.FindByID("E1")
	require.NoError(t, err)
	assert.Same(t, first, got)
}

func TestAll_ReiterableYCorteTemprano(t *testing.T) {
	repo := memory.NewEmployeeRepository(memory.DefaultCapacity, permanent("A"), permanent("B"), permanent("C"))

	assert.Equal(t, collectIDs(repo), collectIDs(repo))

	var seen int
	for range repo.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestNewEmployeeRepository_CapacidadPorDefecto(t *testing.T) {
	repo := memory.NewEmployeeRepository(0)
	assert.Equal(t, memory.DefaultCapacity, repo.Capacity())
}

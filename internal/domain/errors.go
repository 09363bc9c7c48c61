package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("empleado no encontrado")
	ErrDuplicateID         = errors.New("el ID de empleado ya existe")
	ErrCapacityExceeded    = errors.New("se alcanzó el máximo de empleados")
	ErrInvalidType         = errors.New("tipo de empleado inválido")
	ErrNonPositiveSalary   = errors.New("el salario básico debe ser mayor que cero")
	ErrNegativeBonus       = errors.New("la bonificación no puede ser negativa")
	ErrNonPositiveDuration = errors.New("la duración del contrato debe ser mayor que cero")
	ErrInvalidMenuChoice   = errors.New("opción de menú inválida")
	ErrInvalidNumber       = errors.New("valor numérico inválido")
	ErrEmptyRoster         = errors.New("no hay empleados registrados")
	ErrExportDisabled      = errors.New("exportación de comprobantes PDF deshabilitada")
)

package console

import "context"

// Opciones del menú principal.
const (
	ChoiceAdd     = 1
	ChoiceList    = 2
	ChoiceSearch  = 3
	ChoiceHighest = 4
	ChoiceAverage = 5
	ChoicePayslip = 6
	ChoiceExit    = 7
)

// HandlerFunc atiende una opción del menú. Los rechazos de validación se imprimen
// dentro del handler; solo se retornan errores de E/S o errSessionEnded.
type HandlerFunc func(ctx context.Context) error

// Router asocia cada opción del menú con su handler.
type Router struct {
	routes map[int]HandlerFunc
}

// NewRouter registra las opciones del menú sobre el handler dado.
// Las opciones 3 y 6 comparten la misma operación; solo cambia el prompt.
func NewRouter(h *Handler) *Router {
	r := &Router{routes: make(map[int]HandlerFunc)}
	r.Register(ChoiceAdd, h.AddEmployee)
	r.Register(ChoiceList, h.ListEmployees)
	r.Register(ChoiceSearch, h.Payslip("Enter Employee ID to search: "))
	r.Register(ChoiceHighest, h.HighestNetSalary)
	r.Register(ChoiceAverage, h.AverageSalary)
	r.Register(ChoicePayslip, h.Payslip("Enter Employee ID for Payslip: "))
	r.Register(ChoiceExit, h.Exit)
	return r
}

// Register asocia (o reemplaza) el handler de una opción.
func (r *Router) Register(choice int, fn HandlerFunc) {
	r.routes[choice] = fn
}

// Lookup devuelve el handler de la opción, si existe.
func (r *Router) Lookup(choice int) (HandlerFunc, bool) {
	fn, ok := r.routes[choice]
	return fn, ok
}

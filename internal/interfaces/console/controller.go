// Package console implementa la sesión interactiva: menú, flujos de captura y salida formateada.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jhoicas/payroll-cli/internal/application/usecase"
	"github.com/jhoicas/payroll-cli/internal/domain"
	"github.com/jhoicas/payroll-cli/pkg/logger"
)

// State estado de la máquina del menú.
type State int

const (
	StateMenuLoop State = iota
	StateExited
)

// Controller ciclo síncrono: menú → opción → handler → menú, hasta la opción 7.
type Controller struct {
	handler *Handler
	router  *Router
	in      *Prompter
	out     io.Writer
	log     *logger.Logger
	state   State
}

// NewController arma handler y router sobre la entrada/salida de la sesión.
func NewController(uc *usecase.PayrollUseCase, in io.Reader, out io.Writer, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	prompter := NewPrompter(in, out)
	h := NewHandler(uc, prompter, out, log)
	return &Controller{
		handler: h,
		router:  NewRouter(h),
		in:      prompter,
		out:     out,
		log:     log,
		state:   StateMenuLoop,
	}
}

// State estado actual.
func (c *Controller) State() State { return c.state }

// Run ejecuta la sesión. Retorna nil al salir con la opción 7 o al agotarse la entrada
// (en ese caso imprime el mismo resumen de cierre); ctx.Err() si el contexto se cancela.
func (c *Controller) Run(ctx context.Context) error {
	c.log.Debug().Msg("sesión iniciada")
	for c.state == StateMenuLoop {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := c.step(ctx)
		switch {
		case err == nil:
		case errors.Is(err, errSessionEnded):
			c.state = StateExited
		case errors.Is(err, io.EOF):
			c.log.Debug().Msg("fin de la entrada")
			fmt.Fprintln(c.out)
			c.handler.farewell()
			c.state = StateExited
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			c.log.Debug().Err(err).Msg("sesión cancelada")
			c.state = StateExited
			return err
		default:
			c.state = StateExited
			return fmt.Errorf("console: %w", err)
		}
	}
	c.log.Debug().Msg("sesión finalizada")
	return nil
}

// step imprime el menú, lee una opción y la despacha.
func (c *Controller) step(ctx context.Context) error {
	fmt.Fprint(c.out, menuText)
	line, err := c.in.Line(ctx, menuPrompt)
	if err != nil {
		return err
	}
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return c.handler.reject(domain.ErrInvalidMenuChoice)
	}
	fn, ok := c.router.Lookup(choice)
	if !ok {
		return c.handler.reject(domain.ErrInvalidMenuChoice)
	}
	c.log.Debug().Int("choice", choice).Msg("opción seleccionada")
	return fn(ctx)
}

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/payroll-cli/internal/domain"
)

// Límites de los montos aceptados; fuera de ellos el texto se trata como número inválido.
const (
	maxExponent = 18
	maxDigits   = 30
)

type readResult struct {
	line string
	err  error
}

// Prompter imprime un mensaje y lee una línea de la entrada.
// La lectura corre en una goroutine para que la cancelación del contexto no espere al usuario.
type Prompter struct {
	in      *bufio.Reader
	out     io.Writer
	results chan readResult
	pending bool
}

// NewPrompter envuelve la entrada y la salida de la sesión.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, results: make(chan readResult, 1)}
}

// Line imprime prompt (sin salto de línea) y devuelve la línea leída sin el "\n".
// Retorna io.EOF solo si la entrada terminó sin datos pendientes, y ctx.Err()
// si el contexto se cancela antes o durante la espera.
func (p *Prompter) Line(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}
	// una lectura abandonada por cancelación se reutiliza en la siguiente llamada
	if !p.pending {
		p.pending = true
		go func() {
			line, err := p.read()
			p.results <- readResult{line: line, err: err}
		}()
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-p.results:
		p.pending = false
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return r.line, r.err
	}
}

func (p *Prompter) read() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Int lee un entero; texto no numérico retorna domain.ErrInvalidNumber.
func (p *Prompter) Int(ctx context.Context, prompt string) (int, error) {
	line, err := p.Line(ctx, prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidNumber, line)
	}
	return n, nil
}

// Decimal lee un monto; texto no numérico o fuera de rango retorna domain.ErrInvalidNumber.
func (p *Prompter) Decimal(ctx context.Context, prompt string) (decimal.Decimal, error) {
	line, err := p.Line(ctx, prompt)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(strings.TrimSpace(line))
	if err != nil || !inRange(d) {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidNumber, line)
	}
	return d, nil
}

// inRange acota exponente y dígitos significativos: "1e400000000" se parsea,
// pero renderizarlo construiría una cadena de cientos de millones de dígitos.
func inRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	if exp > maxExponent || exp < -maxExponent {
		return false
	}
	c := d.Coefficient()
	return len(c.Abs(c).Text(10)) <= maxDigits
}

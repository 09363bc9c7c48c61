package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jhoicas/payroll-cli/internal/application/usecase"
	"github.com/jhoicas/payroll-cli/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/payroll-cli/internal/infrastructure/pdf"
	"github.com/jhoicas/payroll-cli/internal/interfaces/console"
	"github.com/jhoicas/payroll-cli/pkg/config"
	"github.com/jhoicas/payroll-cli/pkg/logger"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
)

func main() {
	if err := rootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd(in io.Reader, out io.Writer) *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:   "payroll",
		Short: "Employee Payroll Management System",
		Long: `Sesión interactiva de nómina: alta de empleados de planta y por contrato,
listado, búsqueda, comprobantes de pago, mayor neto y promedio.

El padrón vive en memoria (máximo 5 empleados) y se pierde al salir.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			return run(cmd.Context(), cfg, in, out)
		},
	}

	cmd.Flags().String("log-level", "", "Nivel de logs (trace, debug, info, warn, error, disabled)")
	cmd.Flags().String("payslip-dir", "", "Directorio donde exportar los comprobantes en PDF (vacío = deshabilitado)")
	bindFlag(v, cmd, config.KeyLogLevel, "log-level")
	bindFlag(v, cmd, config.KeyPayslipPDFDir, "payslip-dir")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "payroll version %s (build: %s)\n", Version, BuildTime)
		},
	})

	return cmd
}

// bindFlag enlaza el flag a la clave de Viper; el flag solo gana si se pasó explícitamente.
func bindFlag(v *viper.Viper, cmd *cobra.Command, key, flag string) {
	_ = v.BindPFlag(key, cmd.Flags().Lookup(flag))
}

func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	}).WithField("session", uuid.NewString())
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("payslip_pdf", cfg.Payslip.PDFEnabled()).
		Msg("iniciando sesión")

	export := usecase.PayslipExport{}
	if cfg.Payslip.PDFEnabled() {
		export = usecase.PayslipExport{
			Generator: infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
			Dir:       cfg.Payslip.PDFDir,
		}
	}

	repo := memory.NewEmployeeRepository(memory.DefaultCapacity)
	payrollUC := usecase.NewPayrollUseCase(repo, export, log)
	controller := console.NewController(payrollUC, in, out, log)

	if err := controller.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info().Msg("señal de apagado recibida")
			return nil
		}
		log.Error().Err(err).Msg("sesión abortada")
		return err
	}
	log.Info().Int("employees", payrollUC.Count()).Msg("sesión finalizada")
	return nil
}

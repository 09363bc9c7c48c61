package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Log     LogConfig
	Payslip PayslipConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel de logs (trace, debug, info, warn, error, disabled).
type LogConfig struct {
	Level string
}

// PayslipConfig exportación de comprobantes en PDF.
// Si PDFDir está vacío la exportación queda deshabilitada.
type PayslipConfig struct {
	PDFDir string
}

// Claves reconocidas (nombres de variables de entorno).
const (
	KeyAppEnv        = "APP_ENV"
	KeyAppName       = "APP_NAME"
	KeyLogLevel      = "LOG_LEVEL"
	KeyPayslipPDFDir = "PAYSLIP_PDF_DIR"
)

// New crea la instancia de Viper con archivo opcional, variables de entorno y valores por defecto.
// El caller puede enlazar flags (BindPFlag) antes de llamar a Load.
func New() *viper.Viper {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyAppEnv, "development")
	v.SetDefault(KeyAppName, "payroll-cli")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyPayslipPDFDir, "")
}

// Load construye Config a partir de la instancia de Viper. Las env vars tienen prioridad sobre el archivo.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = New()
	}
	cfg := &Config{
		App: AppConfig{
			Env:  strings.TrimSpace(v.GetString(KeyAppEnv)),
			Name: strings.TrimSpace(v.GetString(KeyAppName)),
		},
		Log: LogConfig{
			Level: strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		},
		Payslip: PayslipConfig{
			PDFDir: strings.TrimSpace(v.GetString(KeyPayslipPDFDir)),
		},
	}
	return cfg, nil
}

// PDFEnabled indica si los comprobantes impresos también se exportan a PDF.
func (c PayslipConfig) PDFEnabled() bool {
	return c.PDFDir != ""
}

package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo .env). Los valores ambientales que antes eran
// constantes de módulo (credencial admin por defecto, símbolo de moneda) se
// inyectan aquí y viajan explícitos hasta los servicios.
type Config struct {
	App      AppConfig
	DB       DBConfig
	Admin    AdminConfig
	Currency CurrencyConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración del almacenamiento embebido.
type DBConfig struct {
	// Path ruta del archivo SQLite. Un solo proceso escritor.
	Path string
}

// AdminConfig credencial del administrador sembrado en la primera
// inicialización del almacenamiento.
type AdminConfig struct {
	Username string
	Password string
}

// CurrencyConfig formato de moneda para la capa de presentación.
type CurrencyConfig struct {
	Symbol string // símbolo antepuesto, ej. "₹", "$"
	Locale string // etiqueta BCP 47 para el separador de miles, ej. "en-IN"
}

// JWTConfig configuración de los tokens de sesión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// SMTPConfig valores por defecto del transporte de correo; la configuración
// operativa vive en la tabla email_config del almacenamiento.
type SMTPConfig struct {
	Server string
	Port   int
}

// Load construye la configuración leyendo variables de entorno y, si existe,
// un archivo .env en el directorio de trabajo.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "bizhub-core"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			Path: getString(v, "DB_FILE", "bizhub.db"),
		},
		Admin: AdminConfig{
			Username: getString(v, "ADMIN_USERNAME", "admin"),
			Password: getString(v, "ADMIN_PASSWORD", "admin123"),
		},
		Currency: CurrencyConfig{
			Symbol: getString(v, "CURRENCY_SYMBOL", "₹"),
			Locale: getString(v, "CURRENCY_LOCALE", "en-IN"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "bizhub-core"),
		},
		SMTP: SMTPConfig{
			Server: getString(v, "SMTP_SERVER", ""),
			Port:   getInt(v, "SMTP_PORT", 587),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return def
}

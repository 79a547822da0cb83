package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config agrupa la configuración del API (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	DB        DBConfig
	JWT       JWTConfig
	HTTP      HTTPConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Docs      DocsConfig
	Bootstrap BootstrapConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	Driver      string // postgres | memory
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RedisConfig caché de listados. Addr vacío = sin caché.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Enabled indica si hay un Redis configurado.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// RateLimitConfig límite por IP para /auth/login.
type RateLimitConfig struct {
	LoginPerSecond float64
	LoginBurst     int
}

// DocsConfig Swagger UI.
type DocsConfig struct {
	Enabled bool
}

// BootstrapConfig usuario administrador creado al arrancar si se define.
type BootstrapConfig struct {
	AdminUsername string
	AdminPassword string
}

// Enabled indica si hay credenciales de arranque completas.
func (c BootstrapConfig) Enabled() bool {
	return c.AdminUsername != "" && c.AdminPassword != ""
}

// ClientConfig configuración de salonctl.
type ClientConfig struct {
	APIURL string
	Token  string
}

// Load lee la configuración del API desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, DB_PORT, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := newViper()

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "salon-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			Driver:      strings.ToLower(getString(v, "STORAGE_DRIVER", StoragePostgres)),
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "nail_salon"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 10),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "salon-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
			TTL:      time.Duration(getInt(v, "CACHE_TTL_SECONDS", 60)) * time.Second,
		},
		RateLimit: RateLimitConfig{
			LoginPerSecond: getFloat(v, "LOGIN_RATE_PER_SECOND", 1),
			LoginBurst:     getInt(v, "LOGIN_BURST", 5),
		},
		Docs: DocsConfig{
			Enabled: getBool(v, "DOCS_ENABLED", false),
		},
		Bootstrap: BootstrapConfig{
			AdminUsername: getString(v, "BOOTSTRAP_ADMIN_USERNAME", ""),
			AdminPassword: getString(v, "BOOTSTRAP_ADMIN_PASSWORD", ""),
		},
	}
	return cfg, nil
}

// Validate comprueba lo mínimo para arrancar el API.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET es requerido")
	}
	switch c.DB.Driver {
	case StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER desconocido: %q", c.DB.Driver)
	}
	return nil
}

// LoadClient lee la configuración de salonctl (SALON_API_URL, SALON_TOKEN).
func LoadClient() *ClientConfig {
	v := newViper()
	return &ClientConfig{
		APIURL: strings.TrimRight(getString(v, "SALON_API_URL", "http://localhost:8080"), "/"),
		Token:  getString(v, "SALON_TOKEN", ""),
	}
}

func newViper() *viper.Viper {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return n
	default:
		return v.GetInt(key)
	}
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if !v.IsSet(key) {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
	if err != nil {
		return def
	}
	return f
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	API  APIConfig
	Stub StubConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// APIConfig configuración del cliente HTTP hacia el backend.
// Los valores por defecto replican los del backend local de desarrollo.
type APIConfig struct {
	BaseURL        string // ej. http://localhost:8080/api
	RequestTimeout time.Duration
	ConnectTimeout time.Duration
	SocketTimeout  time.Duration
}

// StubConfig configuración del servidor stub de desarrollo.
type StubConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c StubConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, STUB_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "appecommerce"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL:        getString(v, "API_BASE_URL", "http://localhost:8080/api"),
			RequestTimeout: getDuration(v, "API_REQUEST_TIMEOUT", 30*time.Second),
			ConnectTimeout: getDuration(v, "API_CONNECT_TIMEOUT", 15*time.Second),
			SocketTimeout:  getDuration(v, "API_SOCKET_TIMEOUT", 15*time.Second),
		},
		Stub: StubConfig{
			Host: getString(v, "STUB_HOST", "127.0.0.1"),
			Port: getInt(v, "STUB_PORT", 8080),
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

func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if v.IsSet(key) {
		if d := v.GetDuration(key); d > 0 {
			return d
		}
	}
	return def
}

package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// DefaultConfigYAML configuración por defecto embebida en el binario
//
//go:embed config.yaml
var DefaultConfigYAML []byte

// Config configuración de la aplicación
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Empresa  EmpresaConfig  `mapstructure:"empresa"`
	Limits   LimitsConfig   `mapstructure:"limits"`
}

// ServerConfig servidor HTTP
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DatabaseConfig almacenamiento relacional. Driver "sqlite" usa Path; "mysql" usa el resto.
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Path     string `mapstructure:"path"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
	LogLevel string `mapstructure:"log_level"`
}

// LogConfig salida de zerolog
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console | json
}

// EmpresaConfig datos del contribuyente usados como cabecera por defecto en las plantillas
type EmpresaConfig struct {
	RUC         string `mapstructure:"ruc"`
	RazonSocial string `mapstructure:"razon_social"`
}

// LimitsConfig límites por IP
type LimitsConfig struct {
	UploadPerMinute int `mapstructure:"upload_per_minute"`
}

var (
	// GlobalConfig instancia global de configuración
	GlobalConfig *Config
)

// LoadConfig carga la configuración.
// Prioridad: variables de entorno > archivo externo > .env > configuración embebida.
func LoadConfig(configPath string) (*Config, error) {
	// .env opcional; un archivo ausente no es un error
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("leer configuración embebida: %w", err)
	}
	log.Debug().Msg("configuración embebida cargada")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Warn().Err(err).Str("path", configPath).Msg("no se pudo leer el archivo de configuración indicado")
		} else {
			log.Info().Str("path", configPath).Msg("archivo de configuración externo combinado")
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/activos")
		externalViper.AddConfigPath("$HOME/.activos")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Warn().Err(err).Msg("no se pudo combinar la configuración externa")
			} else {
				log.Info().Str("path", externalViper.ConfigFileUsed()).Msg("archivo de configuración externo combinado")
			}
		}
	}

	v.SetEnvPrefix("ACTIVOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// PORT sin prefijo, como en la mayoría de plataformas de despliegue
	_ = v.BindEnv("server.port", "ACTIVOS_SERVER_PORT", "PORT")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("interpretar configuración: %w", err)
	}

	cfg.Server.Port = NormalizePort(cfg.Server.Port)
	if cfg.Limits.UploadPerMinute <= 0 {
		cfg.Limits.UploadPerMinute = 30
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}

	GlobalConfig = &cfg

	return &cfg, nil
}

// NormalizePort agrega el prefijo ":" cuando falta ("3000" -> ":3000")
func NormalizePort(port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		return ":3000"
	}
	if !strings.HasPrefix(port, ":") {
		return ":" + port
	}
	return port
}

// PrintConfig registra la configuración efectiva (sin contraseñas)
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	c := GlobalConfig
	ev := log.Info().
		Str("port", c.Server.Port).
		Str("mode", c.Server.Mode).
		Str("db_driver", c.Database.Driver)
	if c.Database.Driver == "mysql" {
		ev = ev.Str("db", fmt.Sprintf("%s@%s:%s/%s", c.Database.Username, c.Database.Host, c.Database.Port, c.Database.DBName))
	} else {
		ev = ev.Str("db", c.Database.Path)
	}
	ev.Msg("configuración actual")
}

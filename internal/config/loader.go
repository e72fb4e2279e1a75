package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. BACKOFFICE_JWT_SECRET
const EnvPrefix = "BACKOFFICE"

// Load reads config.<env>.yml from path, applies environment overrides and defaults.
// A missing config file is tolerated so the service can run purely from the environment.
func Load(path, env string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName(fmt.Sprintf("config.%s", env))
	v.SetConfigType("yml")
	v.AddConfigPath(path)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvKeys(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}
	c.ApplyDefaults()

	return &c, nil
}

// bindEnvKeys registers every key so AutomaticEnv works for keys absent from the file
func bindEnvKeys(v *viper.Viper) {
	keys := []string{
		"server.host", "server.port", "server.request_timeout",
		"database.dsn", "database.host", "database.port", "database.user", "database.password",
		"database.name", "database.ssl", "database.maxIdleConns", "database.maxOpenConns",
		"database.connMaxLifetime",
		"jwt.secret", "jwt.expiry", "jwt.issuer",
		"log.level",
		"provisioning.timeout", "provisioning.max_attempts", "provisioning.suffix_min", "provisioning.suffix_max",
		"platform.url", "platform.api_key", "platform.retry_max", "platform.timeout",
	}
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
	// DATABASE_URL is the conventional name on hosted platforms
	_ = v.BindEnv("database.dsn", EnvPrefix+"_DATABASE_DSN", "DATABASE_URL")
	_ = v.BindEnv("jwt.secret", EnvPrefix+"_JWT_SECRET", "JWT_SECRET")
}

/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/tomoncle/faber/database"
)

// ErrInvalidSettings wraps every error returned by Load and LoadFromMap.
var ErrInvalidSettings = errors.New("invalid settings")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Settings is the process configuration. The five POSTGRES_* variables have no
// defaults.
type Settings struct {
	// PostgreSQL connection, all required.
	PostgresHost     string `env:"POSTGRES_HOST,required,notEmpty" validate:"required"`
	PostgresPort     int    `env:"POSTGRES_PORT,required,notEmpty" validate:"required,min=1,max=65535"`
	PostgresUser     string `env:"POSTGRES_USER,required,notEmpty" validate:"required"`
	PostgresPassword string `env:"POSTGRES_PASSWORD,required,notEmpty" validate:"required"`
	PostgresDB       string `env:"POSTGRES_DB,required,notEmpty" validate:"required"`

	SSLMode         string        `env:"DB_SSLMODE" envDefault:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"100" validate:"min=1"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10" validate:"min=0"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h" validate:"min=0"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"30m" validate:"min=0"`
	ConnectTimeout  time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"10s" validate:"min=0"`
	EnableQueryLog  bool          `env:"DB_ENABLE_QUERY_LOG" envDefault:"false"`
	SlowQueryTime   time.Duration `env:"DB_SLOW_QUERY_TIME" envDefault:"2s" validate:"min=0"`

	MigrateOnStartup bool   `env:"DB_MIGRATE_ON_STARTUP" envDefault:"true"`
	SQLInitPath      string `env:"DB_SQL_INIT_PATH"`
	Environment      string `env:"DB_ENVIRONMENT" envDefault:"prod" validate:"required"`
	ForeignKeyFile   string `env:"DB_FOREIGN_KEY_FILE"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the settings from the process environment.
func Load() (*Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return check(&s)
}

// LoadFromMap reads the settings from vars only, ignoring the process
// environment.
func LoadFromMap(vars map[string]string) (*Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return check(&s)
}

func check(s *Settings) (*Settings, error) {
	if err := validate.Struct(s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return s, nil
}

// ConnectionConfig is the PostgreSQL connection described by s.
func (s *Settings) ConnectionConfig() *database.ConnectionConfig {
	return &database.ConnectionConfig{
		Type:            database.TypePostgres,
		Host:            s.PostgresHost,
		Port:            s.PostgresPort,
		Username:        s.PostgresUser,
		Password:        s.PostgresPassword,
		DBName:          s.PostgresDB,
		SSLMode:         s.SSLMode,
		MaxOpenConns:    s.MaxOpenConns,
		MaxIdleConns:    s.MaxIdleConns,
		ConnMaxLifetime: s.ConnMaxLifetime,
		ConnMaxIdleTime: s.ConnMaxIdleTime,
		ConnectTimeout:  s.ConnectTimeout,
		EnableQueryLog:  s.EnableQueryLog,
		SlowQueryTime:   s.SlowQueryTime,
	}
}

// DatabaseURL is the single connection string built from the five required
// values, for example postgres://user:pass@db:5432/fatigue?sslmode=disable.
func (s *Settings) DatabaseURL() string {
	cfg := s.ConnectionConfig()
	cfg.ConnectTimeout = 0
	return database.PostgresURL(cfg)
}

// DatabaseConfig is the full configuration handed to the database factory.
func (s *Settings) DatabaseConfig() *database.Config {
	return &database.Config{
		ConnectionConfig: *s.ConnectionConfig(),
		DataMigrateConfig: database.DataMigrateConfig{
			EnableMigrateOnStartup: s.MigrateOnStartup,
			ForeignKeyFile:         s.ForeignKeyFile,
		},
		DataInitConfig: database.DataInitConfig{
			Filepath:    s.SQLInitPath,
			Environment: s.Environment,
		},
	}
}

// Redacted describes the target database without the password.
func (s *Settings) Redacted() string {
	return fmt.Sprintf("postgres://%s:***@%s:%d/%s?sslmode=%s",
		s.PostgresUser, s.PostgresHost, s.PostgresPort, s.PostgresDB, s.SSLMode)
}

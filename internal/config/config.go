/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

// ServerConfig holds HTTP server and session settings
type ServerConfig struct {
	ListenAddr string
	SessionTTL time.Duration
}

// fileConfig mirrors the optional config.yaml. Environment variables take
// precedence over file values.
type fileConfig struct {
	DatabasePath string `yaml:"database_path"`
	ListenAddr   string `yaml:"listen_addr"`
	SessionTTL   string `yaml:"session_ttl"`
}

// Load assembles the configuration from the optional CONFIG_FILE yaml and
// environment variables. The database file path is the only setting without
// a usable zero default.
func Load() (*Config, error) {
	file, err := loadFileConfig(getEnvString("CONFIG_FILE", "config.yaml"))
	if err != nil {
		return nil, err
	}

	connMaxLifetime, err := getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	connMaxIdleTime, err := getEnvDuration("DB_CONN_MAX_IDLE_TIME", 30*time.Second)
	if err != nil {
		return nil, err
	}

	pingTimeout, err := getEnvDuration("DB_PING_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	sessionTTLDefault := 12 * time.Hour
	if file.SessionTTL != "" {
		sessionTTLDefault, err = time.ParseDuration(file.SessionTTL)
		if err != nil {
			return nil, fmt.Errorf("invalid session_ttl in config file: %q (%w)", file.SessionTTL, err)
		}
	}
	sessionTTL, err := getEnvDuration("SESSION_TTL", sessionTTLDefault)
	if err != nil {
		return nil, err
	}

	return &Config{
		Database: DatabaseConfig{
			Path:            getEnvString("DATABASE_PATH", withDefault(file.DatabasePath, "coincollector.db")),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: connMaxLifetime,
			ConnMaxIdleTime: connMaxIdleTime,
			PingTimeout:     pingTimeout,
		},
		Server: ServerConfig{
			ListenAddr: getEnvString("LISTEN_ADDR", withDefault(file.ListenAddr, ":8080")),
			SessionTTL: sessionTTL,
		},
	}, nil
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("unable to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("unable to parse %s: %w", path, err)
	}
	return cfg, nil
}

func withDefault(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	if value := os.Getenv(key); value != "" {
		duration, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("invalid duration for %s: %q (%w)", key, value, err)
		}
		return duration, nil
	}
	return defaultValue, nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

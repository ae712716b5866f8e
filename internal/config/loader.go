// Package config loads the .wolfpub.yml project configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wolfpub/wolfpub/pkg/engine"
)

// FileName is the project configuration file looked up in the work
// directory.
const FileName = ".wolfpub.yml"

// Config is the full project configuration.
type Config struct {
	Version  string         `yaml:"version"`
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds the PostgreSQL connection settings.
type DatabaseConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	Name           string `yaml:"name"`
	User           string `yaml:"user"`
	Password       string `yaml:"password"`
	SSLMode        string `yaml:"sslmode"`
	MaxConnections int32  `yaml:"max_connections"`
	MinConnections int32  `yaml:"min_connections"`
	MaxIdleMinutes int    `yaml:"max_idle_minutes"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig holds the logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Loader reads the configuration from a work directory.
type Loader struct {
	workDir  string
	filePath string
}

// NewLoader creates a loader rooted at workDir.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:  workDir,
		filePath: filepath.Join(workDir, FileName),
	}
}

// Load reads and parses the configuration file. The DATABASE_URL
// environment variable, when set, overrides the database section.
func (l *Loader) Load() (*Config, error) {
	content, err := os.ReadFile(l.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s", l.filePath)
		}
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides the database section from the DATABASE_URL
// environment variable when it is set.
func (c *Config) ApplyEnv() error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil
	}
	connector, err := engine.ParseConnectionString(databaseURL)
	if err != nil {
		return fmt.Errorf("invalid DATABASE_URL: %w", err)
	}
	c.applyConnector(connector)
	return nil
}

// Default returns the configuration used when a setting is absent.
func Default() *Config {
	return &Config{
		Version: "0.1.0",
		Database: DatabaseConfig{
			Host:           "localhost",
			Port:           5432,
			Name:           "wolfpub",
			User:           "postgres",
			SSLMode:        "disable",
			MaxConnections: 10,
			MinConnections: 2,
			MaxIdleMinutes: 5,
		},
		Server: ServerConfig{Addr: ":8080"},
		Log:    LogConfig{Level: "info", Format: "json"},
	}
}

// Connector translates the database section into connector settings.
func (c *Config) Connector() engine.ConnectorConfig {
	return engine.ConnectorConfig{
		Host:        c.Database.Host,
		Port:        c.Database.Port,
		Database:    c.Database.Name,
		User:        c.Database.User,
		Password:    c.Database.Password,
		SSLMode:     c.Database.SSLMode,
		MaxConns:    c.Database.MaxConnections,
		MinConns:    c.Database.MinConnections,
		MaxIdleTime: time.Duration(c.Database.MaxIdleMinutes) * time.Minute,
	}
}

func (c *Config) applyConnector(connector engine.ConnectorConfig) {
	c.Database.Host = connector.Host
	c.Database.Port = connector.Port
	c.Database.Name = connector.Database
	c.Database.User = connector.User
	c.Database.Password = connector.Password
	c.Database.SSLMode = connector.SSLMode
}

// Write renders the configuration to the work directory, for the init
// command.
func (l *Loader) Write(cfg *Config) error {
	content, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	return os.WriteFile(l.filePath, content, 0o644)
}

// Exists reports whether the configuration file is present.
func (l *Loader) Exists() bool {
	_, err := os.Stat(l.filePath)
	return err == nil
}

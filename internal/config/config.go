package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverSheets = "sheets"
	DriverSQLite = "sqlite"

	configPathEnv = "CONFIG_FILE"
)

type HTTPConfig struct {
	Port             string   `yaml:"port"`
	CORSAllowOrigins []string `yaml:"cors_allow_origins"`
}

// StoreConfig selects and locates the record store.
type StoreConfig struct {
	Driver          string `yaml:"driver"`
	SheetKey        string `yaml:"sheet_key"`
	SheetName       string `yaml:"sheet_name"`
	CredentialsFile string `yaml:"credentials_file"`
	SQLitePath      string `yaml:"sqlite_path"`
}

type ViewConfig struct {
	HistorySize  int     `yaml:"history_size"`
	ChartPadding float64 `yaml:"chart_padding"`
}

type SecurityConfig struct {
	// bcrypt hash of the access code required to submit; empty disables the check
	AccessCodeHash string  `yaml:"access_code_hash"`
	RateLimitRPS   float64 `yaml:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Config is passed explicitly to everything that needs it.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Store    StoreConfig    `yaml:"store"`
	View     ViewConfig     `yaml:"view"`
	Security SecurityConfig `yaml:"security"`
	Log      LogConfig      `yaml:"log"`
}

func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{Port: "8080"},
		Store: StoreConfig{
			Driver:          DriverSheets,
			SheetName:       "gas_data",
			CredentialsFile: "service_account.json",
			SQLitePath:      "./gas_data.db",
		},
		View: ViewConfig{
			HistorySize:  5,
			ChartPadding: 10,
		},
		Security: SecurityConfig{
			RateLimitRPS:   1,
			RateLimitBurst: 5,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads .env files (if any), then the optional YAML file named by
// CONFIG_FILE, then applies environment overrides.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	cfg := Default()
	if path := os.Getenv(configPathEnv); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: decode yaml: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	setString("HTTP_PORT", &c.HTTP.Port)
	setString("STORE_DRIVER", &c.Store.Driver)
	setString("SP_SHEET_KEY", &c.Store.SheetKey)
	setString("SP_SHEET", &c.Store.SheetName)
	setString("GOOGLE_APPLICATION_CREDENTIALS", &c.Store.CredentialsFile)
	setString("SQLITE_PATH", &c.Store.SQLitePath)
	setString("ACCESS_CODE_HASH", &c.Security.AccessCodeHash)
	setString("LOG_LEVEL", &c.Log.Level)

	if v := strings.TrimSpace(os.Getenv("CORS_ALLOW_ORIGINS")); v != "" {
		c.HTTP.CORSAllowOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				c.HTTP.CORSAllowOrigins = append(c.HTTP.CORSAllowOrigins, origin)
			}
		}
	}

	if v := strings.TrimSpace(os.Getenv("HISTORY_SIZE")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: parse HISTORY_SIZE: %w", err)
		}
		c.View.HistorySize = n
	}
	if v := strings.TrimSpace(os.Getenv("CHART_PADDING")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: parse CHART_PADDING: %w", err)
		}
		c.View.ChartPadding = f
	}
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_RPS")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: parse RATE_LIMIT_RPS: %w", err)
		}
		c.Security.RateLimitRPS = f
	}
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_BURST")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: parse RATE_LIMIT_BURST: %w", err)
		}
		c.Security.RateLimitBurst = n
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverSheets:
		if c.Store.SheetKey == "" {
			return errors.New("config: SP_SHEET_KEY is required for the sheets driver")
		}
		if c.Store.CredentialsFile == "" {
			return errors.New("config: credentials file is required for the sheets driver")
		}
	case DriverSQLite:
		if c.Store.SQLitePath == "" {
			return errors.New("config: sqlite path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("config: unknown store driver %q", c.Store.Driver)
	}
	if c.Store.SheetName == "" {
		return errors.New("config: sheet name is required")
	}
	if c.View.HistorySize <= 0 {
		return errors.New("config: history size must be positive")
	}
	if c.View.ChartPadding < 0 {
		return errors.New("config: chart padding must not be negative")
	}
	return nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Convert ConvertConfig `yaml:"convert"`
	Cleanup CleanupConfig `yaml:"cleanup"`
	Archive ArchiveConfig `yaml:"archive"`
	Auth    AuthConfig    `yaml:"auth"`
	Log     LogConfig     `yaml:"log"`
	Store   StoreConfig   `yaml:"store"`
	Users   []User        `yaml:"users"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type StorageConfig struct {
	UploadDir string `yaml:"upload_dir"`
	OutputDir string `yaml:"output_dir"`
}

type ConvertConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
	MaxUploadMB    int `yaml:"max_upload_mb"`
}

type CleanupConfig struct {
	MaxAgeHours     int `yaml:"max_age_hours"`
	IntervalMinutes int `yaml:"interval_minutes"`
}

type ArchiveConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Endpoint   string `yaml:"endpoint"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	Bucket     string `yaml:"bucket"`
	UseSSL     bool   `yaml:"use_ssl"`
	ExpireDays int    `yaml:"expire_days"`
}

type AuthConfig struct {
	Enabled          bool   `yaml:"enabled"`
	JWTSecret        string `yaml:"jwt_secret"`
	TokenExpireHours int    `yaml:"token_expire_hours"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type StoreConfig struct {
	MaxJobs int `yaml:"max_jobs"`
}

type User struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

var GlobalConfig *Config

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.UploadDir == "" {
		cfg.Storage.UploadDir = "uploads"
	}
	if cfg.Storage.OutputDir == "" {
		cfg.Storage.OutputDir = "outputs"
	}
	if cfg.Convert.TimeoutSeconds == 0 {
		cfg.Convert.TimeoutSeconds = 60
	}
	if cfg.Cleanup.MaxAgeHours == 0 {
		cfg.Cleanup.MaxAgeHours = 24
	}
	if cfg.Cleanup.IntervalMinutes == 0 {
		cfg.Cleanup.IntervalMinutes = 60
	}
	if cfg.Archive.ExpireDays == 0 {
		cfg.Archive.ExpireDays = 7
	}
	if cfg.Auth.TokenExpireHours == 0 {
		cfg.Auth.TokenExpireHours = 24
	}
	if cfg.Store.MaxJobs == 0 {
		cfg.Store.MaxJobs = 100
	}

	GlobalConfig = &cfg
	return &cfg, nil
}

// FindUser finds a user by username
func (c *Config) FindUser(username string) *User {
	for i := range c.Users {
		if c.Users[i].Username == username {
			return &c.Users[i]
		}
	}
	return nil
}

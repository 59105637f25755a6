package config

import (
	"os"
	"path"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// SysConfig system configuration
type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
	// NodeID seeds the snowflake generator used for display references.
	NodeID int64 `yaml:"node_id" json:"node_id"`
}

// WebConfig web server configuration
type WebConfig struct {
	Host         string `yaml:"host" json:"host"`
	Port         int    `yaml:"port" json:"port"`
	Secret       string `yaml:"secret" json:"secret"`
	SecureCookie bool   `yaml:"secure_cookie" json:"secure_cookie"`
}

// BackendConfig locates the REST backend.
type BackendConfig struct {
	BaseURL string `yaml:"base_url" json:"base_url"`
	Timeout int    `yaml:"timeout" json:"timeout"` // seconds, 0 disables
}

// SessionConfig admin workspace lifetime
type SessionConfig struct {
	IdleMinutes int `yaml:"idle_minutes" json:"idle_minutes"`
}

// LeadsConfig public form behaviour
type LeadsConfig struct {
	ConfirmSeconds int `yaml:"confirm_seconds" json:"confirm_seconds"`
}

// OplogConfig operator audit log storage. An empty DSN disables it.
type OplogConfig struct {
	DSN           string `yaml:"dsn" json:"dsn"`
	RetentionDays int    `yaml:"retention_days" json:"retention_days"`
}

// ContentConfig public catalog source
type ContentConfig struct {
	File string `yaml:"file" json:"file"`
}

// LogConfig logging configuration
type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System  SysConfig     `yaml:"system" json:"system"`
	Web     WebConfig     `yaml:"web" json:"web"`
	Backend BackendConfig `yaml:"backend" json:"backend"`
	Session SessionConfig `yaml:"session" json:"session"`
	Leads   LeadsConfig   `yaml:"leads" json:"leads"`
	Oplog   OplogConfig   `yaml:"oplog" json:"oplog"`
	Content ContentConfig `yaml:"content" json:"content"`
	Logger  LogConfig     `yaml:"logger" json:"logger"`
}

func (c *AppConfig) GetLogDir() string {
	return path.Join(c.System.Workdir, "logs")
}

func (c *AppConfig) BackendTimeout() time.Duration {
	return time.Duration(c.Backend.Timeout) * time.Second
}

func (c *AppConfig) SessionIdle() time.Duration {
	return time.Duration(c.Session.IdleMinutes) * time.Minute
}

func (c *AppConfig) ConfirmHold() time.Duration {
	return time.Duration(c.Leads.ConfirmSeconds) * time.Second
}

func (c *AppConfig) initDirs() {
	_ = os.MkdirAll(c.GetLogDir(), 0o755)
}

func setEnvValue(name string, val *string) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = evalue
	}
}

func setEnvBoolValue(name string, val *bool) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = cast.ToBool(evalue)
	}
}

func setEnvIntValue(name string, val *int) {
	if evalue := os.Getenv(name); evalue != "" {
		if v, err := cast.ToIntE(evalue); err == nil {
			*val = v
		}
	}
}

func setEnvInt64Value(name string, val *int64) {
	if evalue := os.Getenv(name); evalue != "" {
		if v, err := cast.ToInt64E(evalue); err == nil {
			*val = v
		}
	}
}

// DefaultAppConfig returns a fresh copy of the built in defaults.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Appid:    "TechBucket",
			Location: "Asia/Kathmandu",
			Workdir:  "/var/techbucket",
			NodeID:   1,
		},
		Web: WebConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Backend: BackendConfig{
			BaseURL: "https://techbucket-api.onrender.com/api",
			Timeout: 30,
		},
		Session: SessionConfig{IdleMinutes: 120},
		Leads:   LeadsConfig{ConfirmSeconds: 3},
		Oplog:   OplogConfig{RetentionDays: 365},
		Logger: LogConfig{
			Mode:       "development",
			FileEnable: false,
			Filename:   "/var/techbucket/logs/techbucket.log",
		},
	}
}

// LoadConfig reads cfile (or techbucket.yml, then /etc/techbucket.yml),
// falls back to defaults, and applies TECHBUCKET_* environment overrides.
func LoadConfig(cfile string) (*AppConfig, error) {
	if cfile == "" {
		cfile = "techbucket.yml"
	}
	if !fileExists(cfile) {
		cfile = "/etc/techbucket.yml"
	}
	cfg := DefaultAppConfig()
	if fileExists(cfile) {
		data, err := os.ReadFile(cfile)
		if err != nil {
			return nil, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", cfile)
		}
	}

	setEnvValue("TECHBUCKET_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvValue("TECHBUCKET_SYSTEM_LOCATION", &cfg.System.Location)
	setEnvBoolValue("TECHBUCKET_SYSTEM_DEBUG", &cfg.System.Debug)
	setEnvInt64Value("TECHBUCKET_SYSTEM_NODE_ID", &cfg.System.NodeID)

	setEnvValue("TECHBUCKET_WEB_HOST", &cfg.Web.Host)
	setEnvIntValue("TECHBUCKET_WEB_PORT", &cfg.Web.Port)
	setEnvValue("TECHBUCKET_WEB_SECRET", &cfg.Web.Secret)
	setEnvBoolValue("TECHBUCKET_WEB_SECURE_COOKIE", &cfg.Web.SecureCookie)

	setEnvValue("TECHBUCKET_BACKEND_URL", &cfg.Backend.BaseURL)
	setEnvIntValue("TECHBUCKET_BACKEND_TIMEOUT", &cfg.Backend.Timeout)

	setEnvIntValue("TECHBUCKET_SESSION_IDLE_MINUTES", &cfg.Session.IdleMinutes)
	setEnvIntValue("TECHBUCKET_LEADS_CONFIRM_SECONDS", &cfg.Leads.ConfirmSeconds)

	setEnvValue("TECHBUCKET_OPLOG_DSN", &cfg.Oplog.DSN)
	setEnvIntValue("TECHBUCKET_OPLOG_RETENTION_DAYS", &cfg.Oplog.RetentionDays)
	setEnvValue("TECHBUCKET_CONTENT_FILE", &cfg.Content.File)

	setEnvValue("TECHBUCKET_LOGGER_MODE", &cfg.Logger.Mode)
	setEnvBoolValue("TECHBUCKET_LOGGER_FILE_ENABLE", &cfg.Logger.FileEnable)
	setEnvValue("TECHBUCKET_LOGGER_FILENAME", &cfg.Logger.Filename)

	cfg.initDirs()
	return cfg, nil
}

func fileExists(file string) bool {
	info, err := os.Stat(file)
	return err == nil && !info.IsDir()
}

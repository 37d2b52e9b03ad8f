package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Secret string `yaml:"secret" json:"secret"`
}

type DBConfig struct {
	Type   string `yaml:"type" json:"type"`
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Name   string `yaml:"name" json:"name"`
	User   string `yaml:"user" json:"user"`
	Passwd string `yaml:"passwd" json:"passwd"`
	Debug  bool   `yaml:"debug" json:"debug"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig    `yaml:"system" json:"system"`
	Web      WebConfig    `yaml:"web" json:"web"`
	Database DBConfig     `yaml:"database" json:"database"`
	Logger   LoggerConfig `yaml:"logger" json:"logger"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "stockpilot",
		Location: "Local",
		Workdir:  "/var/stockpilot",
		Debug:    false,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 1850,
	},
	Database: DBConfig{
		Type:   "postgres",
		Host:   "127.0.0.1",
		Port:   5432,
		Name:   "stockpilot",
		User:   "postgres",
		Passwd: "",
	},
	Logger: LoggerConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/stockpilot/stockpilot.log",
	},
}

func setEnvValue(name string, val *string) {
	if v, ok := os.LookupEnv(name); ok {
		*val = v
	}
}

func setEnvIntValue(name string, val *int) {
	if v, ok := os.LookupEnv(name); ok {
		*val = cast.ToInt(v)
	}
}

func setEnvBoolValue(name string, val *bool) {
	if v, ok := os.LookupEnv(name); ok {
		*val = cast.ToBool(v)
	}
}

// LoadConfig reads the YAML configuration file and applies environment
// variable overrides. A missing file yields the built-in defaults.
func LoadConfig(cfile string) *AppConfig {
	cfg := *DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				panic(err)
			}
		}
	}

	setEnvValue("STOCKPILOT_WORKDIR", &cfg.System.Workdir)
	setEnvValue("STOCKPILOT_LOCATION", &cfg.System.Location)
	setEnvBoolValue("STOCKPILOT_DEBUG", &cfg.System.Debug)

	setEnvValue("STOCKPILOT_WEB_HOST", &cfg.Web.Host)
	setEnvIntValue("STOCKPILOT_WEB_PORT", &cfg.Web.Port)
	setEnvValue("STOCKPILOT_WEB_SECRET", &cfg.Web.Secret)

	setEnvValue("STOCKPILOT_DB_TYPE", &cfg.Database.Type)
	setEnvValue("STOCKPILOT_DB_HOST", &cfg.Database.Host)
	setEnvIntValue("STOCKPILOT_DB_PORT", &cfg.Database.Port)
	setEnvValue("STOCKPILOT_DB_NAME", &cfg.Database.Name)
	setEnvValue("STOCKPILOT_DB_USER", &cfg.Database.User)
	setEnvValue("STOCKPILOT_DB_PWD", &cfg.Database.Passwd)

	setEnvValue("STOCKPILOT_LOGGER_MODE", &cfg.Logger.Mode)

	if cfg.Logger.Filename == "" {
		cfg.Logger.Filename = filepath.Join(cfg.System.Workdir, "stockpilot.log")
	}
	return &cfg
}

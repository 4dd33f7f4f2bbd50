package config

import (
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

const envPrefix = "EQUIPBOOK"

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Server        Server        `yaml:"server"`
	API           API           `yaml:"api"`
	Images        Images        `yaml:"images"`
	Notifications Notifications `yaml:"notifications"`
	Log           Log           `yaml:"log"`
	CORS          CORS          `yaml:"cors"`
	RateLimit     RateLimit     `yaml:"rate_limit"`
	LoginURL      string        `yaml:"login_url" envconfig:"LOGIN_URL" validate:"required"`
	SecureCookies bool          `yaml:"secure_cookies" envconfig:"SECURE_COOKIES"`
	TemplatesPath string        `yaml:"templates_path" envconfig:"TEMPLATES_PATH" validate:"required"`
	StaticPath    string        `yaml:"static_path" envconfig:"STATIC_PATH" validate:"required"`
}

type Server struct {
	Port         string        `yaml:"port" envconfig:"PORT" validate:"required,numeric"`
	ReadTimeout  time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" validate:"gt=0"`
}

type API struct {
	BaseURL        string        `yaml:"base_url" envconfig:"API_BASE_URL" validate:"required,url"`
	Timeout        time.Duration `yaml:"timeout"` // zero means requests may hang, as they always did in the browser client
	DefaultPerPage int           `yaml:"default_per_page" validate:"required,gt=0"`
	PopularLimit   int           `yaml:"popular_limit" validate:"required,gt=0"`
}

type Images struct {
	Placeholder  string `yaml:"placeholder" validate:"required,startswith=/"`
	EquipmentDir string `yaml:"equipment_dir" validate:"required,startswith=/"`
}

type Notifications struct {
	Duration time.Duration `yaml:"duration" validate:"gte=3s,lte=4s"`
}

type Log struct {
	Level string `yaml:"level" envconfig:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn warning error"`
	JSON  bool   `yaml:"json" envconfig:"LOG_JSON"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" envconfig:"CORS_ALLOWED_ORIGINS"`
}

// RateLimit throttles state-changing requests per user. Zero burst turns it
// off.
type RateLimit struct {
	Rate  float64       `yaml:"rate" validate:"gte=0"`
	Burst float64       `yaml:"burst" validate:"gte=0"`
	Idle  time.Duration `yaml:"idle" validate:"gte=0"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key" envconfig:"JWT_SECRET" validate:"required"`
}

func (s *Config) JwtKey() string {
	return s.private.JwtKey
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

// mustApplyEnv overrides file values with environment variables. Unset
// variables leave the file value untouched.
func mustApplyEnv(output interface{}) {
	if err := envconfig.Process(envPrefix, output); err != nil {
		panic("can't apply environment overrides: " + err.Error())
	}
}

func mustValidate(output interface{}) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(output); err != nil {
		panic("invalid config: " + err.Error())
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)
	mustApplyEnv(&public)
	mustValidate(&public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)
	mustApplyEnv(&private)
	mustValidate(&private)

	return &Config{public, private}
}

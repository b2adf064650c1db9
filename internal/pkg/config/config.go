package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

// Public front-end settings served on /api/config when nothing is configured.
const (
	FallbackServiceURL = "https://salon-booking.example.com"
	FallbackPublicKey  = "public-anon-key"
)

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Salon   SalonConfig
	Twilio  TwilioConfig
	Backend BackendConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Moscow"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Enabled     bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Addr        string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password    string        `envconfig:"REDIS_PASSWORD" default:""`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	CatalogTTL  time.Duration `envconfig:"REDIS_CATALOG_TTL" default:"60s"`
	WizardTTL   time.Duration `envconfig:"REDIS_WIZARD_TTL" default:"2h"`
	DialTimeout time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"3s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Moscow"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"10800"` // 3*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type SalonConfig struct {
	Name          string        `envconfig:"SALON_NAME" default:"Beauty Studio"`
	TimeZone      string        `envconfig:"SALON_TIMEZONE" default:"Europe/Moscow"`
	ReminderCron  string        `envconfig:"SALON_REMINDER_CRON" default:"0 9 * * *"`
	ResetTokenTTL time.Duration `envconfig:"SALON_RESET_TOKEN_TTL" default:"1h"`
}

type TwilioConfig struct {
	Enabled        bool   `envconfig:"TWILIO_ENABLED" default:"false"`
	AccountSID     string `envconfig:"TWILIO_ACCOUNT_SID" default:""`
	AuthToken      string `envconfig:"TWILIO_AUTH_TOKEN" default:""`
	PhoneNumber    string `envconfig:"TWILIO_PHONE_NUMBER" default:""`
	WhatsAppNumber string `envconfig:"TWILIO_WHATSAPP_NUMBER" default:""`
}

// BackendConfig is handed to the browser as-is, so it must only hold public values.
type BackendConfig struct {
	ServiceURL string `envconfig:"BACKEND_SERVICE_URL" default:""`
	PublicKey  string `envconfig:"BACKEND_PUBLIC_KEY" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location falls back to UTC for an unknown zone name.
func (c SalonConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c BackendConfig) Resolved() BackendConfig {
	if c.ServiceURL == "" {
		c.ServiceURL = FallbackServiceURL
	}
	if c.PublicKey == "" {
		c.PublicKey = FallbackPublicKey
	}
	return c
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	cfg.Backend = cfg.Backend.Resolved()
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Moscow",
			MaxConns: 10,
		},
		Redis: RedisConfig{
			Enabled:    false,
			CatalogTTL: time.Minute,
			WizardTTL:  time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Moscow",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 10800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Salon: SalonConfig{
			Name:          "Test Studio",
			TimeZone:      "Europe/Moscow",
			ReminderCron:  "0 9 * * *",
			ResetTokenTTL: time.Hour,
		},
		Backend: BackendConfig{}.Resolved(),
	}
}

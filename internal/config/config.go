package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	AccessTTL  string `yaml:"access_ttl"`
	RefreshTTL string `yaml:"refresh_ttl"`
	SessionTTL string `yaml:"session_ttl"`
}

type OTPConfig struct {
	Length   int    `yaml:"length"`
	PhoneTTL string `yaml:"phone_ttl"`
	EmailTTL string `yaml:"email_ttl"`
}

type QueueConfig struct {
	Name        string `yaml:"name"`
	MaxAttempts int    `yaml:"max_attempts"`
	Backoff     string `yaml:"backoff"`
	Concurrency int    `yaml:"concurrency"`
	Embedded    bool   `yaml:"embedded"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	FromName string `yaml:"from_name"`
}

type CacheConfig struct {
	IdentityTTL string `yaml:"identity_ttl"`
	CompanyTTL  string `yaml:"company_ttl"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	OTP      OTPConfig      `yaml:"otp"`
	Queue    QueueConfig    `yaml:"queue"`
	Twilio   TwilioConfig   `yaml:"twilio"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Cache    CacheConfig    `yaml:"cache"`
	Casbin   CasbinConfig   `yaml:"casbin"`
}

type Config struct {
	Port    string
	GinMode string

	DSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret  string
	JWTIssuer  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	SessionTTL time.Duration

	OTPLength   int
	PhoneOTPTTL time.Duration
	EmailOTPTTL time.Duration

	QueueName        string
	QueueMaxAttempts int
	QueueBackoff     time.Duration
	QueueConcurrency int
	WorkerEmbedded   bool

	TwilioSID   string
	TwilioToken string
	TwilioFrom  string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string

	IdentityCacheTTL time.Duration
	CompanyCacheTTL  time.Duration

	CasbinModelPath string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml and applies environment overrides for
// connection endpoints and secrets.
func Load() (*Config, error) {
	return LoadFile(env("CONFIG_PATH", "config/config.yml"))
}

// LoadFile loads configuration from the given yaml file
func LoadFile(path string) (*Config, error) {
	file, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accTTL, err := parseDuration("jwt.access_ttl", file.JWT.AccessTTL, time.Hour)
	if err != nil {
		return nil, err
	}
	refTTL, err := parseDuration("jwt.refresh_ttl", file.JWT.RefreshTTL, 7*24*time.Hour)
	if err != nil {
		return nil, err
	}
	sesTTL, err := parseDuration("jwt.session_ttl", file.JWT.SessionTTL, 7*24*time.Hour)
	if err != nil {
		return nil, err
	}
	phoneTTL, err := parseDuration("otp.phone_ttl", file.OTP.PhoneTTL, 10*time.Minute)
	if err != nil {
		return nil, err
	}
	emailTTL, err := parseDuration("otp.email_ttl", file.OTP.EmailTTL, 24*time.Hour)
	if err != nil {
		return nil, err
	}
	backoff, err := parseDuration("queue.backoff", file.Queue.Backoff, 5*time.Second)
	if err != nil {
		return nil, err
	}
	identityTTL, err := parseDuration("cache.identity_ttl", file.Cache.IdentityTTL, 10*time.Minute)
	if err != nil {
		return nil, err
	}
	companyTTL, err := parseDuration("cache.company_ttl", file.Cache.CompanyTTL, 5*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:    env("PORT", strconv.Itoa(file.App.Port)),
		GinMode: env("GIN_MODE", file.App.GinMode),

		DSN: env("DATABASE_URL", file.Database.DSN),

		RedisAddr:     env("REDIS_ADDR", file.Redis.Addr),
		RedisPassword: env("REDIS_PASSWORD", file.Redis.Password),
		RedisDB:       file.Redis.DB,

		JWTSecret:  env("JWT_SECRET", file.JWT.Secret),
		JWTIssuer:  file.JWT.Issuer,
		AccessTTL:  accTTL,
		RefreshTTL: refTTL,
		SessionTTL: sesTTL,

		OTPLength:   file.OTP.Length,
		PhoneOTPTTL: phoneTTL,
		EmailOTPTTL: emailTTL,

		QueueName:        file.Queue.Name,
		QueueMaxAttempts: file.Queue.MaxAttempts,
		QueueBackoff:     backoff,
		QueueConcurrency: file.Queue.Concurrency,
		WorkerEmbedded:   file.Queue.Embedded,

		TwilioSID:   env("TWILIO_ACCOUNT_SID", file.Twilio.AccountSID),
		TwilioToken: env("TWILIO_AUTH_TOKEN", file.Twilio.AuthToken),
		TwilioFrom:  env("TWILIO_FROM_NUMBER", file.Twilio.FromNumber),

		SMTPHost:     env("SMTP_HOST", file.SMTP.Host),
		SMTPPort:     file.SMTP.Port,
		SMTPUser:     env("SMTP_USER", file.SMTP.Username),
		SMTPPassword: env("SMTP_PASS", file.SMTP.Password),
		SMTPFrom:     env("SMTP_FROM", file.SMTP.From),
		SMTPFromName: file.SMTP.FromName,

		IdentityCacheTTL: identityTTL,
		CompanyCacheTTL:  companyTTL,

		CasbinModelPath: file.Casbin.ModelPath,
	}

	if cfg.OTPLength == 0 {
		cfg.OTPLength = 6
	}
	if cfg.QueueName == "" {
		cfg.QueueName = "otp-queue"
	}
	if cfg.QueueMaxAttempts == 0 {
		cfg.QueueMaxAttempts = 3
	}
	if cfg.QueueConcurrency == 0 {
		cfg.QueueConcurrency = 1
	}
	if cfg.SMTPPort == 0 {
		cfg.SMTPPort = 587
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required (config jwt.secret or JWT_SECRET)")
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var file ConfigFile
	if err := yaml.Unmarshal(bytes, &file); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &file, nil
}

func parseDuration(field, value string, def time.Duration) (time.Duration, error) {
	if value == "" {
		return def, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", field, err)
	}
	return d, nil
}

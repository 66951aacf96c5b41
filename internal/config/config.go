// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"fotopanel/pkg/utils"
)

type MailProvider string

const (
	MailConsole  MailProvider = "console"
	MailSMTP     MailProvider = "smtp"
	MailSendgrid MailProvider = "sendgrid"
)

type NotificationStore string

const (
	NotificationStorePostgres NotificationStore = "postgres"
	NotificationStoreDynamoDB NotificationStore = "dynamodb"
)

type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	UseSSL     bool
	RequireTLS bool
}

type DynamoDBConfig struct {
	Region             string
	Endpoint           string
	AccessKeyID        string
	SecretAccessKey    string
	NotificationsTable string
}

type Config struct {
	Env         string
	Port        string
	PostgresURL string
	AutoMigrate bool

	JWTSecret string
	JWTTTL    time.Duration

	LoginEmailDomain  string
	DashboardTimezone string
	DashboardLocation *time.Location

	MailProvider   MailProvider
	MailFrom       string
	MailFromName   string
	AppBaseURL     string
	SMTP           SMTPConfig
	SendgridAPIKey string

	NotificationStore NotificationStore
	DynamoDB          DynamoDBConfig

	RollbarToken     string
	TemplateCacheTTL time.Duration
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("JWT_TTL", time.Hour)
	v.SetDefault("LOGIN_EMAIL_DOMAIN", "fotopanel.com")
	v.SetDefault("DASHBOARD_TIMEZONE", "Europe/Istanbul")
	v.SetDefault("MAIL_PROVIDER", string(MailConsole))
	v.SetDefault("MAIL_FROM", "no-reply@fotopanel.com")
	v.SetDefault("MAIL_FROM_NAME", "Fotopanel")
	v.SetDefault("APP_BASE_URL", "http://localhost:3000")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_REQUIRE_TLS", true)
	v.SetDefault("NOTIFICATION_STORE", string(NotificationStorePostgres))
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("NOTIFICATIONS_TABLE", "notifications")
	v.SetDefault("TEMPLATE_CACHE_TTL", 5*time.Minute)
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// .env is optional; real deployments use the environment
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env:         v.GetString("APP_ENV"),
		Port:        v.GetString("PORT"),
		PostgresURL: v.GetString("POSTGRES_URL"),
		AutoMigrate: v.GetBool("AUTO_MIGRATE"),

		JWTSecret: v.GetString("JWT_SECRET"),
		JWTTTL:    v.GetDuration("JWT_TTL"),

		LoginEmailDomain:  strings.TrimPrefix(v.GetString("LOGIN_EMAIL_DOMAIN"), "@"),
		DashboardTimezone: v.GetString("DASHBOARD_TIMEZONE"),

		MailProvider: MailProvider(strings.ToLower(v.GetString("MAIL_PROVIDER"))),
		MailFrom:     v.GetString("MAIL_FROM"),
		MailFromName: v.GetString("MAIL_FROM_NAME"),
		AppBaseURL:   v.GetString("APP_BASE_URL"),
		SMTP: SMTPConfig{
			Host:       v.GetString("SMTP_HOST"),
			Port:       v.GetInt("SMTP_PORT"),
			Username:   v.GetString("SMTP_USERNAME"),
			Password:   v.GetString("SMTP_PASSWORD"),
			UseSSL:     v.GetBool("SMTP_USE_SSL"),
			RequireTLS: v.GetBool("SMTP_REQUIRE_TLS"),
		},
		SendgridAPIKey: v.GetString("SENDGRID_API_KEY"),

		NotificationStore: NotificationStore(strings.ToLower(v.GetString("NOTIFICATION_STORE"))),
		DynamoDB: DynamoDBConfig{
			Region:             v.GetString("AWS_REGION"),
			Endpoint:           v.GetString("DYNAMODB_ENDPOINT"),
			AccessKeyID:        v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:    v.GetString("AWS_SECRET_ACCESS_KEY"),
			NotificationsTable: v.GetString("NOTIFICATIONS_TABLE"),
		},

		RollbarToken:     v.GetString("ROLLBAR_TOKEN"),
		TemplateCacheTTL: v.GetDuration("TEMPLATE_CACHE_TTL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate reports every problem at once.
func (c *Config) validate() error {
	var errs []error

	if c.PostgresURL == "" {
		errs = append(errs, errors.New("POSTGRES_URL is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.LoginEmailDomain == "" {
		errs = append(errs, errors.New("LOGIN_EMAIL_DOMAIN must not be empty"))
	}

	loc, err := utils.LoadLocation(c.DashboardTimezone)
	if err != nil {
		errs = append(errs, fmt.Errorf("DASHBOARD_TIMEZONE: %w", err))
	}
	c.DashboardLocation = loc

	switch c.MailProvider {
	case MailConsole:
	case MailSMTP:
		if c.SMTP.Host == "" {
			errs = append(errs, errors.New("SMTP_HOST is required when MAIL_PROVIDER=smtp"))
		}
	case MailSendgrid:
		if c.SendgridAPIKey == "" {
			errs = append(errs, errors.New("SENDGRID_API_KEY is required when MAIL_PROVIDER=sendgrid"))
		}
	default:
		errs = append(errs, fmt.Errorf("MAIL_PROVIDER %q is not one of console, smtp, sendgrid", c.MailProvider))
	}

	switch c.NotificationStore {
	case NotificationStorePostgres, NotificationStoreDynamoDB:
	default:
		errs = append(errs, fmt.Errorf("NOTIFICATION_STORE %q is not one of postgres, dynamodb", c.NotificationStore))
	}

	return errors.Join(errs...)
}

package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	PhonePe  *PhonePe
	Webhook  *Webhook
	Email    *Email
	Admin    *Admin
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type PhonePe struct {
	Host          string `env:"PHONEPE_HOST"`
	ClientID      string `env:"PHONEPE_CLIENT_ID"`
	ClientSecret  string `env:"PHONEPE_CLIENT_SECRET"`
	ClientVersion string `env:"PHONEPE_CLIENT_VERSION"`
	RedirectURL   string `env:"PHONEPE_REDIRECT_URL"`
}

type Webhook struct {
	Username string `env:"PHONEPE_WEBHOOK_USERNAME"`
	Password string `env:"PHONEPE_WEBHOOK_PASSWORD"`
}

type Email struct {
	APIKey     string `env:"RESEND_API_KEY"`
	From       string `env:"EMAIL_FROM"`
	AdminEmail string `env:"ADMIN_EMAIL"`
}

type Admin struct {
	Key string `env:"ADMIN_API_KEY"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var phonepe PhonePe
	var webhook Webhook
	var email Email
	var admin Admin
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&phonepe.Host, "g", `https://api.phonepe.com/apis`, "Payment gateway base URL")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&phonepe)
	if err != nil {
		return nil, fmt.Errorf("error parsing gateway config: %w", err)
	}
	err = env.Parse(&webhook)
	if err != nil {
		return nil, fmt.Errorf("error parsing webhook config: %w", err)
	}
	err = env.Parse(&email)
	if err != nil {
		return nil, fmt.Errorf("error parsing email config: %w", err)
	}
	err = env.Parse(&admin)
	if err != nil {
		return nil, fmt.Errorf("error parsing admin config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		PhonePe:  &phonepe,
		Webhook:  &webhook,
		Email:    &email,
		Admin:    &admin,
		App:      &app,
	}

	return &config, nil
}

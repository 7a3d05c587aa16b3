package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config enthält alle Konfigurationsparameter aus Umgebungsvariablen.
type Config struct {
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`

	HTTPPort     string `envconfig:"HTTP_PORT" default:"4242"`
	APISecretKey string `envconfig:"API_SECRET_KEY"`

	// Leer = kein automatischer Lauf
	HumanizeCron        string  `envconfig:"HUMANIZE_CRON"`
	HumanizeSanitize    bool    `envconfig:"HUMANIZE_SANITIZE" default:"true"`
	StarterThreshold    float64 `envconfig:"HUMANIZE_STARTER_THRESHOLD" default:"0.6"`
	TouchThreshold      float64 `envconfig:"HUMANIZE_TOUCH_THRESHOLD" default:"0.6"`
	HumanizeConcurrency int     `envconfig:"HUMANIZE_CONCURRENCY" default:"2"`
	PreviewMinLength    int     `envconfig:"PREVIEW_MIN_LENGTH" default:"50"`
	SampleLength        int     `envconfig:"SAMPLE_LENGTH" default:"100"`

	// Optional: Reports nach S3 (z.B. Strato HiDrive). Ohne Bucket kein Upload.
	ReportS3Key    string `envconfig:"REPORT_S3_KEY"`
	ReportS3Secret string `envconfig:"REPORT_S3_SECRET"`
	ReportS3URL    string `envconfig:"REPORT_S3_URL"`
	ReportS3Region string `envconfig:"REPORT_S3_REGION" default:"us-east-1"`
	ReportS3Bucket string `envconfig:"REPORT_S3_BUCKET"`
}

// DSN gibt den Data Source Name für die PostgreSQL-Verbindung zurück.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// ReportsEnabled meldet, ob Run-Reports hochgeladen werden sollen.
func (c *Config) ReportsEnabled() bool {
	return c.ReportS3Bucket != "" && c.ReportS3URL != ""
}

// Validate prüft Werte, die envconfig nicht abdeckt.
func (c *Config) Validate() error {
	for name, v := range map[string]float64{
		"HUMANIZE_STARTER_THRESHOLD": c.StarterThreshold,
		"HUMANIZE_TOUCH_THRESHOLD":   c.TouchThreshold,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be within [0,1], got %v", name, v)
		}
	}
	if c.HumanizeConcurrency < 1 {
		return fmt.Errorf("HUMANIZE_CONCURRENCY must be positive, got %d", c.HumanizeConcurrency)
	}
	return nil
}

// Load lädt die Konfiguration aus den Umgebungsvariablen.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return &c, err
	}
	return &c, c.Validate()
}

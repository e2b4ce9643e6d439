// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds every externally tunable value for the API server.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "3333".
	Port string

	// PostgresURL is the Postgres connection string. Required.
	PostgresURL string

	// APIBaseURL is the public base URL of this API, used to build the
	// confirmation links embedded in emails. Required.
	APIBaseURL string

	// WebBaseURL is the base URL of the front-end, used as the redirect
	// target after trip/participant confirmation. Required.
	WebBaseURL string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
	MailFromName string
}

// Load reads configuration from the environment. It returns an error naming
// every required variable that is missing rather than failing on the first.
func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "3333"),
		SMTPHost:     getEnv("SMTP_HOST", "smtp.ethereal.email"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     getEnv("MAIL_FROM", "oi@planner.er"),
		MailFromName: getEnv("MAIL_FROM_NAME", "Planner"),
	}

	port, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return Config{}, fmt.Errorf("SMTP_PORT must be a number: %w", err)
	}
	cfg.SMTPPort = port

	var missing []string
	for _, v := range []struct {
		key string
		dst *string
	}{
		{"POSTGRES_URL", &cfg.PostgresURL},
		{"API_BASE_URL", &cfg.APIBaseURL},
		{"WEB_BASE_URL", &cfg.WebBaseURL},
	} {
		*v.dst = strings.TrimRight(os.Getenv(v.key), "/")
		if *v.dst == "" {
			missing = append(missing, v.key)
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// TripConfirmURL is the link mailed to the trip owner.
func (c Config) TripConfirmURL(tripID string) string {
	return fmt.Sprintf("%s/trips/%s/confirm", c.APIBaseURL, tripID)
}

// ParticipantConfirmURL is the link mailed to invitees.
func (c Config) ParticipantConfirmURL(participantID string) string {
	return fmt.Sprintf("%s/participants/%s/confirm", c.APIBaseURL, participantID)
}

// TripPageURL is the front-end page confirmations redirect to.
func (c Config) TripPageURL(tripID string) string {
	return fmt.Sprintf("%s/trips/%s", c.WebBaseURL, tripID)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

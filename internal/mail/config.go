package mail

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNotConfigured means no mail config file exists yet. Expected on
// fresh installs; callers should show the message and move on.
var ErrNotConfigured = errors.New("mail config not found")

// Config selects and parameterizes a delivery transport. Loaded fresh
// for every send attempt and never mutated by the pipeline.
type Config struct {
	Provider       string `json:"provider"`
	APIKey         string `json:"api_key,omitempty"`
	SenderEmail    string `json:"sender_email"`
	RecipientEmail string `json:"recipient_email"`
	SMTPHost       string `json:"smtp_host,omitempty"`
	SMTPPort       int    `json:"smtp_port,omitempty"`
	SenderPassword string `json:"sender_password,omitempty"`
}

const resendExample = `{
  "provider": "resend",
  "api_key": "re_xxxxxxxxxxxx",
  "sender_email": "digest@yourdomain.com",
  "recipient_email": "your-email@gmail.com"
}`

const smtpExample = `{
  "provider": "smtp",
  "smtp_host": "smtp.gmail.com",
  "smtp_port": 587,
  "sender_email": "you@gmail.com",
  "sender_password": "app-password",
  "recipient_email": "you@gmail.com"
}`

// LoadConfig reads the mail config at path. A missing file yields
// ErrNotConfigured with setup instructions in the message.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w. Create %s with:\n%s\n\nOr for SMTP:\n%s",
				ErrNotConfigured, path, resendExample, smtpExample)
		}
		return Config{}, fmt.Errorf("reading mail config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing mail config %s: %w", path, err)
	}
	if cfg.Provider == "" {
		cfg.Provider = "smtp"
	}
	return cfg, nil
}

// Package mail delivers the formatted digest through a configured
// transport: the resend HTTP API or plain SMTP. Delivery is always
// best-effort from the pipeline's point of view.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// Transport sends one already-rendered message.
type Transport interface {
	Send(ctx context.Context, subject, text, html string) error
}

// NewTransport selects a transport from the config.
func NewTransport(cfg Config) (Transport, error) {
	switch cfg.Provider {
	case "resend":
		return &resendTransport{
			cfg:     cfg,
			baseURL: "https://api.resend.com",
			client:  &http.Client{Timeout: 30 * time.Second},
		}, nil
	case "smtp":
		return &smtpTransport{cfg: cfg}, nil
	default:
		return nil, fmt.Errorf("unknown mail provider: %q (valid: resend, smtp)", cfg.Provider)
	}
}

// Dispatcher loads config and sends a markdown report, deriving the
// HTML alternative. It satisfies the digest pipeline's Mailer.
type Dispatcher struct {
	ConfigPath string
}

func (d Dispatcher) Send(ctx context.Context, subject, bodyMarkdown string) error {
	cfg, err := LoadConfig(d.ConfigPath)
	if err != nil {
		return err
	}
	t, err := NewTransport(cfg)
	if err != nil {
		return err
	}
	return t.Send(ctx, subject, bodyMarkdown, RenderHTML(bodyMarkdown))
}

// --- resend transport ---

type resendTransport struct {
	cfg     Config
	baseURL string
	client  *http.Client
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

func (t *resendTransport) Send(ctx context.Context, subject, text, html string) error {
	body, _ := json.Marshal(resendRequest{
		From:    t.cfg.SenderEmail,
		To:      []string{t.cfg.RecipientEmail},
		Subject: subject,
		HTML:    html,
		Text:    text,
	})

	req, err := http.NewRequestWithContext(ctx, "POST", t.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.cfg.APIKey)

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("resend API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("resend API %d: %s", resp.StatusCode, string(b))
	}
	return nil
}

// --- SMTP transport ---

type smtpTransport struct {
	cfg Config
}

func (t *smtpTransport) Send(ctx context.Context, subject, text, html string) error {
	msg := gomail.NewMsg()
	if err := msg.From(t.cfg.SenderEmail); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(t.cfg.RecipientEmail); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, text)
	msg.AddAlternativeString(gomail.TypeTextHTML, html)

	client, err := gomail.NewClient(t.cfg.SMTPHost,
		gomail.WithPort(t.cfg.SMTPPort),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(t.cfg.SenderEmail),
		gomail.WithPassword(t.cfg.SenderPassword),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

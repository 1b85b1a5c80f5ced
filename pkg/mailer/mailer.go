package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/csmaviation/website-api/pkg/config"
)

// ErrNoRecipients is returned for messages without a To address.
var ErrNoRecipients = errors.New("message has no recipients")

// Message is a single outbound HTML email.
type Message struct {
	To      []string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New picks the SMTP sender when mail is enabled and a log-only sender otherwise.
func New(cfg config.MailConfig, logger *zap.Logger) (Sender, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.Enabled {
		logger.Warn("mail disabled, outbound email will only be logged")
		return NewLogSender(logger), nil
	}
	return NewSMTPSender(cfg)
}

// SMTPSender sends through an authenticated SMTP relay.
type SMTPSender struct {
	host    string
	opts    []mail.Option
	from    string
	timeout time.Duration
}

// NewSMTPSender validates the relay configuration.
func NewSMTPSender(cfg config.MailConfig) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host required")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("mail sender address required")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(cfg.Timeout),
	}
	if cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	return &SMTPSender{host: cfg.Host, opts: opts, from: cfg.From, timeout: cfg.Timeout}, nil
}

// Send dials the relay and delivers msg. A client is built per message so a
// dropped connection never poisons later sends.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m, err := buildMsg(s.from, msg)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.host, s.opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send %q: %w", msg.Subject, err)
	}
	return nil
}

func buildMsg(from string, msg Message) (*mail.Msg, error) {
	recipients := cleanRecipients(msg.To)
	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}

	m := mail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", from, err)
	}
	if err := m.To(recipients...); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)
	if msg.Text != "" {
		m.AddAlternativeString(mail.TypeTextPlain, msg.Text)
	}
	return m, nil
}

func cleanRecipients(to []string) []string {
	out := make([]string, 0, len(to))
	for _, addr := range to {
		if trimmed := strings.TrimSpace(addr); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// LogSender records messages instead of sending them.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender builds a LogSender.
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the envelope of msg.
func (s *LogSender) Send(_ context.Context, msg Message) error {
	recipients := cleanRecipients(msg.To)
	if len(recipients) == 0 {
		return ErrNoRecipients
	}
	s.logger.Info("email suppressed", zap.Strings("to", recipients), zap.String("subject", msg.Subject))
	return nil
}

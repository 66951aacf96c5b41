package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/http"
	"net/smtp"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"fotopanel/internal/config"
)

// Mail is a rendered message ready for delivery.
type Mail struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

type IMailService interface {
	Send(ctx context.Context, m Mail) error
}

// NewMailService picks the transport named by MAIL_PROVIDER.
func NewMailService(cfg *config.Config, log *zap.Logger) IMailService {
	switch cfg.MailProvider {
	case config.MailSMTP:
		return NewSMTPMailService(cfg.SMTP, cfg.MailFrom, cfg.MailFromName)
	case config.MailSendgrid:
		return NewSendgridMailService(cfg.SendgridAPIKey, cfg.MailFrom, cfg.MailFromName)
	default:
		return NewConsoleMailService(log)
	}
}

// ------------------- Console -------------------

type consoleMailService struct {
	log *zap.Logger
}

// NewConsoleMailService logs messages instead of sending them.
func NewConsoleMailService(log *zap.Logger) IMailService {
	return &consoleMailService{log: log}
}

func (s *consoleMailService) Send(_ context.Context, m Mail) error {
	s.log.Info("email (console transport)",
		zap.String("to", m.To),
		zap.String("subject", m.Subject),
		zap.Int("html_bytes", len(m.HTML)))
	return nil
}

// ------------------- SendGrid -------------------

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

type sendgridMailService struct {
	key  string
	from *sgmail.Email
}

func NewSendgridMailService(apiKey, from, fromName string) IMailService {
	return &sendgridMailService{
		key:  apiKey,
		from: sgmail.NewEmail(fromName, from),
	}
}

func (s *sendgridMailService) Send(_ context.Context, m Mail) error {
	p := sgmail.NewPersonalization()
	p.Subject = m.Subject
	p.AddTos(sgmail.NewEmail("", m.To))

	msg := sgmail.NewV3Mail()
	msg.SetFrom(s.from)
	msg.AddPersonalizations(p)
	msg.AddContent(
		sgmail.NewContent("text/plain", m.Text),
		sgmail.NewContent("text/html", m.HTML),
	)

	req := sendgrid.GetRequest(s.key, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(msg)

	res, err := sendgrid.API(req)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}

// ------------------- SMTP -------------------

type smtpMailService struct {
	cfg      config.SMTPConfig
	from     string
	fromName string
}

func NewSMTPMailService(cfg config.SMTPConfig, from, fromName string) IMailService {
	return &smtpMailService{cfg: cfg, from: from, fromName: fromName}
}

func (s *smtpMailService) Send(ctx context.Context, m Mail) error {
	msg := s.compose(m, time.Now())

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	var conn net.Conn
	var err error
	if s.cfg.UseSSL {
		// SMTPS, usually port 465
		tlsDialer := &tls.Dialer{NetDialer: dialer, Config: s.tlsConfig()}
		conn, err = tlsDialer.DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !s.cfg.UseSSL {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(s.tlsConfig()); err != nil {
				return err
			}
		} else if s.cfg.RequireTLS {
			return fmt.Errorf("server does not support STARTTLS and SMTP_REQUIRE_TLS=true")
		}
	}

	if s.cfg.Username != "" {
		if err = c.Auth(smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)); err != nil {
			return err
		}
	}
	if err = c.Mail(s.from); err != nil {
		return err
	}
	if err = c.Rcpt(m.To); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) tlsConfig() *tls.Config {
	return &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
}

// compose builds a multipart/alternative message with text and HTML parts.
func (s *smtpMailService) compose(m Mail, now time.Time) []byte {
	boundary := fmt.Sprintf("alt_%d", now.UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = fmt.Fprintf(&msg, format, a...) }

	write("From: %s\r\n", formatAddress(s.fromName, s.from))
	write("To: %s\r\n", m.To)
	write("Subject: %s\r\n", mime.BEncoding.Encode("UTF-8", m.Subject))
	write("Date: %s\r\n", now.Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", m.Text)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", m.HTML)

	write("--%s--\r\n", boundary)
	return msg.Bytes()
}

func formatAddress(name, addr string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return addr
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", name), addr)
}

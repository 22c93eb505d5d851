package email

import (
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strings"
	"time"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Message is one plain-text mail. A zero Date is stamped at send time.
type Message struct {
	To      string
	Subject string
	Body    string
	Date    time.Time
}

// render produces the RFC 5322 form of m with CRLF line endings.
func (m Message) render(from string) []byte {
	date := m.Date
	if date.IsZero() {
		date = time.Now()
	}

	var b strings.Builder
	writeHeader := func(name, value string) {
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\r\n")
	}
	writeHeader("From", from)
	writeHeader("To", m.To)
	writeHeader("Subject", mime.QEncoding.Encode("utf-8", m.Subject))
	writeHeader("Date", date.Format(time.RFC1123Z))
	writeHeader("MIME-Version", "1.0")
	writeHeader("Content-Type", "text/plain; charset=utf-8")
	b.WriteString("\r\n")

	body := strings.ReplaceAll(m.Body, "\r\n", "\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}

// Send delivers msg through the configured relay. Port 465 uses implicit
// TLS; other ports upgrade with STARTTLS when the server offers it.
func Send(cfg Config, msg Message) error {
	sender, err := mail.ParseAddress(cfg.From)
	if err != nil {
		return fmt.Errorf("smtp from %q: %w", cfg.From, err)
	}
	rcpt, err := mail.ParseAddress(msg.To)
	if err != nil {
		return fmt.Errorf("smtp to %q: %w", msg.To, err)
	}

	client, err := dial(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	if cfg.Username != "" {
		if err := client.Auth(smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)); err != nil {
			return err
		}
	}
	if err := client.Mail(sender.Address); err != nil {
		return err
	}
	if err := client.Rcpt(rcpt.Address); err != nil {
		return err
	}

	writer, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := writer.Write(msg.render(cfg.From)); err != nil {
		_ = writer.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func dial(cfg Config) (*smtp.Client, error) {
	addr := net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port))
	tlsConfig := &tls.Config{ServerName: cfg.Host}

	if cfg.Port == 465 {
		conn, err := tls.Dial("tcp", addr, tlsConfig)
		if err != nil {
			return nil, err
		}
		return smtp.NewClient(conn, cfg.Host)
	}

	client, err := smtp.Dial(addr)
	if err != nil {
		return nil, err
	}
	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(tlsConfig); err != nil {
			_ = client.Close()
			return nil, err
		}
	}
	return client, nil
}

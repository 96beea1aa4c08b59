package mailer

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"go.uber.org/zap"

	"taskboard-api/internal/config"
)

// Sender delivers transactional mail. Services treat delivery failures
// as non-fatal and log them.
type Sender interface {
	SendVerificationCode(to, code string) error
	SendBoardInvite(to, boardName, invitedBy string) error
}

type smtpSender struct {
	cfg    config.SMTPConfig
	logger *zap.Logger
}

func NewSMTPSender(cfg config.SMTPConfig, logger *zap.Logger) Sender {
	return &smtpSender{cfg: cfg, logger: logger}
}

func (s *smtpSender) SendVerificationCode(to, code string) error {
	subject := "Your verification code"
	body := fmt.Sprintf("Your verification code is: %s\r\n\r\nEnter it to finish signing in.\r\n", code)
	return s.send(to, subject, body)
}

func (s *smtpSender) SendBoardInvite(to, boardName, invitedBy string) error {
	subject := fmt.Sprintf("You have been invited to %s", boardName)
	body := fmt.Sprintf("%s invited you to collaborate on the board %q.\r\n\r\nSign in to accept the invitation.\r\n", invitedBy, boardName)
	return s.send(to, subject, body)
}

func (s *smtpSender) send(to, subject, body string) error {
	addr := net.JoinHostPort(s.cfg.Server, fmt.Sprintf("%d", s.cfg.Port))
	msg := s.buildMessage(to, subject, body)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Server)

	var err error
	if s.cfg.Port == 465 {
		err = s.sendImplicitTLS(addr, auth, to, msg)
	} else {
		err = s.sendStartTLS(addr, auth, to, msg)
	}
	if err != nil {
		s.logger.Error("smtp delivery failed",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err))
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	s.logger.Info("mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func (s *smtpSender) buildMessage(to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", s.cfg.SenderName, s.cfg.Username)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

func (s *smtpSender) sendStartTLS(addr string, auth smtp.Auth, to string, msg []byte) error {
	conn, err := net.DialTimeout("tcp", addr, s.timeout())
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}

	client, err := smtp.NewClient(conn, s.cfg.Server)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.cfg.Server}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}
	return s.transact(client, auth, to, msg)
}

func (s *smtpSender) sendImplicitTLS(addr string, auth smtp.Auth, to string, msg []byte) error {
	dialer := &net.Dialer{Timeout: s.timeout()}
	conn, err := tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{ServerName: s.cfg.Server})
	if err != nil {
		return fmt.Errorf("tls dial: %w", err)
	}

	client, err := smtp.NewClient(conn, s.cfg.Server)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	return s.transact(client, auth, to, msg)
}

func (s *smtpSender) transact(client *smtp.Client, auth smtp.Auth, to string, msg []byte) error {
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := client.Mail(s.cfg.Username); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		w.Close()
		return fmt.Errorf("write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close body: %w", err)
	}
	return client.Quit()
}

func (s *smtpSender) timeout() time.Duration {
	if s.cfg.TimeoutSec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(s.cfg.TimeoutSec) * time.Second
}

// Package mail implementa el colaborador de correo saliente sobre SMTP.
// El envío es un único intento síncrono; la fiabilidad (reintentos, colas)
// queda fuera del alcance de este servicio.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/jhoicas/catalogo-api/internal/application/calculator"
	"github.com/jhoicas/catalogo-api/pkg/config"
)

var _ calculator.Mailer = (*SMTPMailer)(nil)

// SMTPMailer envía correos con autenticación PLAIN.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer construye el mailer con la configuración SMTP de la app.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send entrega el mensaje, adjuntando el PDF si viene incluido.
func (m *SMTPMailer) Send(_ context.Context, mail calculator.OutgoingMail) error {
	e := email.NewEmail()
	e.From = m.cfg.Sender()
	e.To = []string{mail.To}
	e.Subject = mail.Subject
	e.Text = []byte(mail.Body)

	if len(mail.Attachment) > 0 {
		if _, err := e.Attach(bytes.NewReader(mail.Attachment), mail.AttachmentName, "application/pdf"); err != nil {
			return fmt.Errorf("mailer: adjuntar PDF: %w", err)
		}
	}

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	if err := e.Send(m.cfg.Addr(), auth); err != nil {
		return fmt.Errorf("mailer: enviar a %s: %w", mail.To, err)
	}
	return nil
}

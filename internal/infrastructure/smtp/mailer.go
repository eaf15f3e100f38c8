// Package smtp implementa el puerto Mailer sobre net/smtp con STARTTLS.
package smtp

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jhoicas/bizhub-core/internal/application/ports"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
	"github.com/jhoicas/bizhub-core/pkg/logger"
)

var _ ports.Mailer = (*Mailer)(nil)

// Mailer transporte SMTP con autenticación PLAIN. La configuración llega por
// llamada; el adaptador no guarda credenciales.
type Mailer struct {
	log *logger.Logger
}

// NewMailer construye el transporte SMTP.
func NewMailer(log *logger.Logger) *Mailer {
	return &Mailer{log: log}
}

// Send entrega un mensaje de texto plano. Una sola tentativa; el reintento
// queda en manos del caller porque duplicaría la entrega.
func (m *Mailer) Send(cfg entity.EmailConfig, recipient, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", cfg.SMTPServer, cfg.SMTPPort)
	auth := smtp.PlainAuth("", cfg.SenderEmail, cfg.SenderPassword, cfg.SMTPServer)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", cfg.SenderEmail)
	fmt.Fprintf(&msg, "To: %s\r\n", recipient)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(addr, auth, cfg.SenderEmail, []string{recipient}, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp send via %s: %w", addr, err)
	}
	m.log.Debug().Str("server", addr).Str("to", recipient).Msg("mensaje entregado al servidor SMTP")
	return nil
}

package ports

import "github.com/jhoicas/bizhub-core/internal/domain/entity"

// Mailer define el puerto de salida para el transporte de correo. Cualquier
// adaptador (SMTP, API de terceros, mock) debe implementar esta interfaz.
// Recibe la configuración completa ya resuelta; no hace cómputo de negocio.
type Mailer interface {
	// Send intenta entregar el mensaje y reporta el fallo como error. El
	// reintento queda prohibido para el caller: una segunda entrega sería
	// visible para el destinatario.
	Send(cfg entity.EmailConfig, recipient, subject, body string) error
}

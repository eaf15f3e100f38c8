package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/bizhub-core/internal/application/ports"
	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
	"github.com/jhoicas/bizhub-core/internal/domain/storage"
	"github.com/jhoicas/bizhub-core/pkg/logger"
)

// EmailUseCase guarda la configuración SMTP y compone notificaciones. La
// entrega real ocurre en el puerto Mailer; aquí solo se resuelve la
// configuración y se construye el cuerpo.
type EmailUseCase struct {
	store  storage.Adapter
	mailer ports.Mailer
	log    *logger.Logger
}

// NewEmailUseCase construye el caso de uso de correo.
func NewEmailUseCase(store storage.Adapter, mailer ports.Mailer, log *logger.Logger) *EmailUseCase {
	return &EmailUseCase{store: store, mailer: mailer, log: log}
}

// SaveConfig guarda la configuración SMTP. Todos los campos salvo el puerto
// son obligatorios.
func (uc *EmailUseCase) SaveConfig(cfg entity.EmailConfig) error {
	if cfg.SMTPServer == "" || cfg.SenderEmail == "" || cfg.SenderPassword == "" || cfg.RecipientEmail == "" {
		return fmt.Errorf("%w: todos los campos de la configuración de correo son obligatorios", domain.ErrValidation)
	}
	if cfg.SMTPPort <= 0 {
		return fmt.Errorf("%w: el puerto SMTP debe ser positivo", domain.ErrValidation)
	}
	return uc.store.SaveEmailConfig(cfg)
}

// GetConfig devuelve la configuración SMTP vigente. ErrNotFound si no hay.
func (uc *EmailUseCase) GetConfig() (entity.EmailConfig, error) {
	return uc.store.GetEmailConfig()
}

// Send entrega un mensaje usando la configuración guardada. ErrMissingConfig
// si no hay configuración. Un recipient vacío usa el destinatario por defecto
// de la configuración.
func (uc *EmailUseCase) Send(subject, body, recipient string) error {
	cfg, err := uc.store.GetEmailConfig()
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: configuración de correo", domain.ErrMissingConfig)
		}
		return err
	}
	to := recipient
	if to == "" {
		to = cfg.RecipientEmail
	}
	if err := uc.mailer.Send(cfg, to, subject, body); err != nil {
		uc.log.Error().Err(err).Str("to", to).Msg("fallo al enviar correo")
		return err
	}
	uc.log.Info().Str("to", to).Str("subject", subject).Msg("correo enviado")
	return nil
}

// SendLowStockAlerts compone y envía la alerta de bajo stock. No envía nada
// con lista vacía.
func (uc *EmailUseCase) SendLowStockAlerts(items []entity.InventoryItem) error {
	if len(items) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("Low stock alert:\n\n")
	for _, it := range items {
		fmt.Fprintf(&b, "- %s: Qty=%d, Threshold=%d\n", it.Name, it.Quantity, it.Threshold)
	}
	return uc.Send("BizHub - Low Stock Alerts", b.String(), "")
}

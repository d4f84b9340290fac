// Package notify envía alertas por correo cuando un repuesto cae bajo su
// stock de seguridad tras una salida.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/warehouse-mro/internal/application/movement"
	"github.com/tu-usuario/warehouse-mro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-mro/pkg/config"
	"github.com/tu-usuario/warehouse-mro/pkg/logger"
	"gopkg.in/gomail.v2"
)

var _ movement.StockAlertNotifier = (*Mailer)(nil)

// Mailer implementación SMTP de StockAlertNotifier vía gomail.
// Con Host vacío queda deshabilitado y NotifyLowStock no hace nada.
type Mailer struct {
	cfg config.SMTPConfig
	log *logger.Logger
}

// NewMailer construye el notificador con la configuración SMTP.
func NewMailer(cfg config.SMTPConfig, log *logger.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: log}
}

// NotifyLowStock envía la alerta de stock bajo. El envío es best-effort:
// el movimiento ya quedó confirmado, así que un fallo solo se registra en el log.
func (m *Mailer) NotifyLowStock(ctx context.Context, part *entity.SparePart) error {
	if m.cfg.Host == "" || m.cfg.To == "" {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", strings.Split(m.cfg.To, ",")...)
	msg.SetHeader("Subject", fmt.Sprintf("[Almacén] Stock bajo: %s", part.MaterialNo))
	msg.SetBody("text/plain", fmt.Sprintf(
		"El repuesto %s (%s) quedó bajo su stock de seguridad.\n\n"+
			"Stock actual: %d\nStock de seguridad: %d\nUbicación: %s\n\nFecha: %s\n",
		part.MaterialNo, part.Description, part.Stock, part.SafetyStock,
		part.Bin, time.Now().Format(time.RFC3339),
	))

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		m.log.Warn().
			Err(err).
			Str("material_no", part.MaterialNo).
			Msg("no se pudo enviar la alerta de stock bajo")
		return fmt.Errorf("enviar alerta de stock bajo: %w", err)
	}

	m.log.Info().
		Str("material_no", part.MaterialNo).
		Int64("stock", part.Stock).
		Int64("safety_stock", part.SafetyStock).
		Msg("alerta de stock bajo enviada")
	return nil
}

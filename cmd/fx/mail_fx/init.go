package mail_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"fotopanel/internal/config"
	"fotopanel/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config, log *zap.Logger) services.IMailService {
	log.Info("mail transport selected", zap.String("provider", string(cfg.MailProvider)))
	return services.NewMailService(cfg, log)
}

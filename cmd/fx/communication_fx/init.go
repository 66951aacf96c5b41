package communication_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fotopanel/internal/repositories"
	"fotopanel/internal/services"
)

var Module = fx.Provide(
	provideCommunicationLogRepo, provideCommunicationService)

func provideCommunicationLogRepo(db *gorm.DB) repositories.CommunicationLogRepository {
	return repositories.NewCommunicationLogRepository(db)
}

func provideCommunicationService(
	accounts repositories.AccountRepository,
	logs repositories.CommunicationLogRepository,
	templates services.EmailTemplateServiceInterface,
	mailer services.IMailService,
	log *zap.Logger,
) services.CommunicationServiceInterface {
	return services.NewCommunicationService(accounts, logs, templates, mailer, log)
}

package email_template_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fotopanel/internal/config"
	"fotopanel/internal/repositories"
	"fotopanel/internal/services"
	mem "fotopanel/pkg/memcache"
)

var Module = fx.Provide(
	provideEmailTemplateRepo, provideEmailTemplateService)

func provideEmailTemplateRepo(db *gorm.DB) repositories.EmailTemplateRepository {
	return repositories.NewEmailTemplateRepository(db)
}

func provideEmailTemplateService(
	repo repositories.EmailTemplateRepository,
	accounts repositories.AccountRepository,
	cache mem.Store[services.ResolvedTemplate],
	mailer services.IMailService,
	cfg *config.Config,
) services.EmailTemplateServiceInterface {
	return services.NewEmailTemplateService(repo, accounts, cache, mailer, cfg)
}

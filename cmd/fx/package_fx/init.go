package package_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fotopanel/internal/config"
	"fotopanel/internal/repositories"
	"fotopanel/internal/services"
)

var Module = fx.Provide(
	providePackageRepo, providePackageService)

func providePackageRepo(db *gorm.DB) repositories.IPackageRepository {
	return repositories.NewPackageRepository(db)
}

func providePackageService(
	packageRepo repositories.IPackageRepository,
	accountRepo repositories.AccountRepository,
	templates services.EmailTemplateServiceInterface,
	log *zap.Logger,
	cfg *config.Config,
) services.PackageServiceInterface {
	return services.NewPackageService(packageRepo, accountRepo, templates, log, cfg)
}

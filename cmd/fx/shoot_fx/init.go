package shoot_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fotopanel/internal/repositories"
	"fotopanel/internal/services"
)

var Module = fx.Provide(
	provideShootRepo, provideShootService)

func provideShootRepo(db *gorm.DB) repositories.ShootRepository {
	return repositories.NewShootRepository(db)
}

func provideShootService(
	shootRepo repositories.ShootRepository,
	customerRepo repositories.CustomerRepository,
	customerService services.CustomerServiceInterface,
	events services.EventPublisher,
) services.ShootServiceInterface {
	return services.NewShootService(shootRepo, customerRepo, customerService, events)
}

package customer_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fotopanel/internal/config"
	"fotopanel/internal/repositories"
	"fotopanel/internal/services"
)

var Module = fx.Provide(
	provideCustomerRepo, provideCustomerService)

func provideCustomerRepo(db *gorm.DB) repositories.CustomerRepository {
	return repositories.NewCustomerRepository(db)
}

func provideCustomerService(
	customerRepo repositories.CustomerRepository,
	accountRepo repositories.AccountRepository,
	events services.EventPublisher,
	cfg *config.Config,
) services.CustomerServiceInterface {
	return services.NewCustomerService(customerRepo, accountRepo, events, cfg)
}

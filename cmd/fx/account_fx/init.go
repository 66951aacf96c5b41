package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fotopanel/internal/repositories"
	"fotopanel/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo,
	services.NewAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

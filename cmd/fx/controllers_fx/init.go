package controllers_fx

import (
	"go.uber.org/fx"

	"fotopanel/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCustomerController),
	fx.Provide(controllers.NewShootController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewPackageController),
	fx.Provide(controllers.NewNotificationController),
	fx.Provide(controllers.NewEmailTemplateController),
	fx.Provide(controllers.NewCommunicationController))

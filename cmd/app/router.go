package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "fotopanel/docs"
	"fotopanel/internal/api/controllers"
	"fotopanel/internal/config"
	"fotopanel/internal/models/db_models"
	"fotopanel/pkg/middleware"
	"fotopanel/pkg/utils"
)

// Controllers groups every handler set the router mounts.
type Controllers struct {
	Accounts       *controllers.AccountController
	Customers      *controllers.CustomerController
	Shoots         *controllers.ShootController
	Dashboard      *controllers.DashboardController
	Packages       *controllers.PackageController
	Notifications  *controllers.NotificationController
	Templates      *controllers.EmailTemplateController
	Communications *controllers.CommunicationController
}

func ProvideRouter(
	cfg *config.Config,
	log *zap.Logger,
	tokens *utils.TokenManager,
	accounts *controllers.AccountController,
	customers *controllers.CustomerController,
	shoots *controllers.ShootController,
	dashboard *controllers.DashboardController,
	packages *controllers.PackageController,
	notifications *controllers.NotificationController,
	templates *controllers.EmailTemplateController,
	communications *controllers.CommunicationController) *gin.Engine {

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tokens, Controllers{
		Accounts:       accounts,
		Customers:      customers,
		Shoots:         shoots,
		Dashboard:      dashboard,
		Packages:       packages,
		Notifications:  notifications,
		Templates:      templates,
		Communications: communications,
	})

	return r
}

func RegisterRoutes(r *gin.Engine, tokens *utils.TokenManager, h Controllers) {
	var (
		superadmin = string(db_models.RoleSuperAdmin)
		admin      = string(db_models.RoleAdmin)
		couple     = string(db_models.RoleCouple)
	)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/packages", h.Packages.ListPackages)
	r.POST("/auth/login", h.Accounts.Login)

	auth := r.Group("/", middleware.JWTAuthMiddleware(tokens))

	customers := auth.Group("/customers")
	customers.GET("", middleware.RoleMiddleware(admin), h.Customers.ListCustomers)
	customers.POST("", middleware.RoleMiddleware(admin), h.Customers.CreateCustomer)
	customers.GET("/:id", middleware.RoleMiddleware(admin, couple), h.Customers.GetCustomer)
	customers.PUT("/:id", middleware.RoleMiddleware(admin, couple), h.Customers.UpdateCustomer)
	customers.DELETE("/:id", middleware.RoleMiddleware(admin), h.Customers.DeleteCustomer)
	customers.POST("/:id/reset-password", middleware.RoleMiddleware(admin), h.Customers.ResetPassword)

	shoots := auth.Group("/shoots")
	shoots.GET("", middleware.RoleMiddleware(admin, couple), h.Shoots.ListShoots)
	shoots.POST("", middleware.RoleMiddleware(admin), h.Shoots.CreateShoot)
	shoots.GET("/:id", middleware.RoleMiddleware(admin, couple), h.Shoots.GetShoot)
	shoots.PUT("/:id", middleware.RoleMiddleware(admin), h.Shoots.UpdateShoot)
	shoots.DELETE("/:id", middleware.RoleMiddleware(admin), h.Shoots.DeleteShoot)

	notifications := auth.Group("/notifications", middleware.RoleMiddleware(admin))
	notifications.GET("", h.Notifications.ListNotifications)
	notifications.GET("/unread-count", h.Notifications.UnreadCount)
	notifications.PATCH("/mark-all-read", h.Notifications.MarkAllRead)
	notifications.PATCH("/:id", h.Notifications.MarkRead)

	adminGroup := auth.Group("/admin", middleware.RoleMiddleware(admin))
	adminGroup.GET("/dashboard/stats", h.Dashboard.GetDashboard)

	templates := adminGroup.Group("/email-templates")
	templates.GET("", h.Templates.ListTemplates)
	templates.GET("/:type", h.Templates.GetTemplate)
	templates.PUT("/:type", h.Templates.SaveTemplate)
	templates.DELETE("/:type", h.Templates.ResetTemplate)
	templates.POST("/:type/preview", h.Templates.PreviewTemplate)
	templates.POST("/:type/test", h.Templates.SendTestEmail)

	super := auth.Group("/superadmin", middleware.RoleMiddleware(superadmin))
	super.GET("/packages", h.Packages.ListPackages)
	super.PUT("/packages", h.Packages.SavePackage)
	super.GET("/photographers", h.Communications.ListPhotographers)
	super.PUT("/photographers/:id/package", h.Packages.AssignPackage)
	super.POST("/communications/email", h.Communications.SendBulkEmail)
	super.GET("/communications/history", h.Communications.History)

	// system-wide templates, used when a studio has no override
	systemTemplates := super.Group("/email-templates")
	systemTemplates.GET("", h.Templates.ListTemplates)
	systemTemplates.GET("/:type", h.Templates.GetTemplate)
	systemTemplates.PUT("/:type", h.Templates.SaveTemplate)
	systemTemplates.DELETE("/:type", h.Templates.ResetTemplate)
	systemTemplates.POST("/:type/preview", h.Templates.PreviewTemplate)
	systemTemplates.POST("/:type/test", h.Templates.SendTestEmail)
}

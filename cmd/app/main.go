package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"fotopanel/cmd/fx/account_fx"
	"fotopanel/cmd/fx/communication_fx"
	"fotopanel/cmd/fx/config_fx"
	"fotopanel/cmd/fx/controllers_fx"
	"fotopanel/cmd/fx/customer_fx"
	"fotopanel/cmd/fx/dashboard"
	"fotopanel/cmd/fx/db_fx"
	"fotopanel/cmd/fx/email_template_fx"
	"fotopanel/cmd/fx/events_fx"
	"fotopanel/cmd/fx/mail_fx"
	"fotopanel/cmd/fx/memcache_fx"
	"fotopanel/cmd/fx/notification_fx"
	"fotopanel/cmd/fx/package_fx"
	"fotopanel/cmd/fx/shoot_fx"
	"fotopanel/internal/config"
	"fotopanel/pkg/utils"
)

// @title           Fotopanel API
// @version         1.0
// @description     Studio panel backend: customers, shoots, dashboard, notifications, email templates, packages and tenant communications.

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		account_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		email_template_fx.Module,
		notification_fx.Module,
		events_fx.Module,
		customer_fx.Module,
		shoot_fx.Module,
		dashboard.Module,
		package_fx.Module,
		communication_fx.Module,
		controllers_fx.Module,

		fx.Provide(provideTokenManager),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func provideTokenManager(cfg *config.Config) *utils.TokenManager {
	return utils.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

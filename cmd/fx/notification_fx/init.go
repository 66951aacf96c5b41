package notification_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fotopanel/internal/config"
	"fotopanel/internal/infra"
	"fotopanel/internal/repositories"
	"fotopanel/internal/services"
)

var Module = fx.Provide(
	provideNotificationRepo, provideNotificationService)

// provideNotificationRepo picks the store named by NOTIFICATION_STORE.
func provideNotificationRepo(cfg *config.Config, db *gorm.DB, log *zap.Logger) (repositories.NotificationRepository, error) {
	if cfg.NotificationStore != config.NotificationStoreDynamoDB {
		return repositories.NewNotificationRepository(db), nil
	}

	client, err := infra.NewDynamoDBClient(context.Background(), cfg.DynamoDB)
	if err != nil {
		return nil, fmt.Errorf("dynamodb client: %w", err)
	}
	log.Info("notifications stored in dynamodb",
		zap.String("table", cfg.DynamoDB.NotificationsTable),
		zap.String("region", cfg.DynamoDB.Region))
	return repositories.NewNotificationDynamoRepository(client, cfg.DynamoDB.NotificationsTable), nil
}

func provideNotificationService(repo repositories.NotificationRepository) services.NotificationServiceInterface {
	return services.NewNotificationService(repo)
}

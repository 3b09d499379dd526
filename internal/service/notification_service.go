package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/italosilvaf/TesteSolfacil/internal/config"
	"github.com/italosilvaf/TesteSolfacil/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventPartnerRegistered, n.handlePartnerRegistered)
	n.dispatcher.Subscribe(events.EventPlantRegistered, n.handlePlantRegistered)
}

func (n *NotificationService) handlePartnerRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("PartnerRegistered", zap.Int64("partner_id", event.PartnerID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handlePlantRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("PlantRegistered", zap.Int64("partner_id", event.PartnerID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.Int64("partner_id", event.PartnerID),
		zap.String("event_type", string(event.Type)))
}

// api/util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/shop/api/logging"
	"github.com/dev-mohitbeniwal/shop/api/model"
)

// ClientChange is the payload published on the client.* events.
type ClientChange struct {
	ActorID   string
	ActorKind string
	Client    model.Client
}

type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyClientChange(ctx context.Context, changeType string, change ClientChange) error {
	fields := []zap.Field{
		zap.String("clientID", change.Client.ID),
		zap.String("actorID", change.ActorID),
		zap.String("actorKind", change.ActorKind),
	}
	switch changeType {
	case "created":
		logger.Info("NOTIFICATION: New client created", append(fields, zap.String("email", change.Client.Email))...)
	case "updated":
		logger.Info("NOTIFICATION: Client updated", fields...)
	case "deleted":
		logger.Info("NOTIFICATION: Client deleted", fields...)
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

func (n *NotificationService) SendEmail(ctx context.Context, recipient, subject, body string) error {
	logger.Info("Sending email",
		zap.String("recipient", recipient),
		zap.String("subject", subject))
	return nil
}

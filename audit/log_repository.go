// api/audit/log_repository.go
package audit

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	shop_errors "github.com/dev-mohitbeniwal/shop/api/errors"
	logger "github.com/dev-mohitbeniwal/shop/api/logging"
)

// LogRepository writes audit events to the structured log. It cannot be queried.
type LogRepository struct{}

var _ Repository = (*LogRepository)(nil)

func NewLogRepository() *LogRepository {
	return &LogRepository{}
}

func (r *LogRepository) LogAccess(ctx context.Context, log AuditLog) error {
	fields := []zap.Field{
		zap.Time("timestamp", log.Timestamp),
		zap.String("actorID", log.UserID),
		zap.String("actorKind", log.ActorKind),
		zap.String("action", log.Action),
		zap.String("targetID", log.ResourceID),
		zap.Strings("granted", log.Granted),
		zap.Bool("accessGranted", log.AccessGranted),
		zap.String("outcome", log.Outcome),
	}
	if len(log.ChangeDetails) > 0 {
		fields = append(fields, zap.ByteString("changeDetails", log.ChangeDetails))
	}
	logger.Info("AUDIT", fields...)
	return nil
}

func (r *LogRepository) QueryLogs(ctx context.Context, from, to time.Time, userID, resourceID string) ([]AuditLog, error) {
	return nil, fmt.Errorf("%w: the log repository only writes", shop_errors.ErrAuditUnavailable)
}

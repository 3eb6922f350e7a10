// api/service/audit_query_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/shop/api/audit"
	shop_errors "github.com/dev-mohitbeniwal/shop/api/errors"
	logger "github.com/dev-mohitbeniwal/shop/api/logging"
	"github.com/dev-mohitbeniwal/shop/api/model"
	"github.com/dev-mohitbeniwal/shop/api/pdp/engine"
)

const (
	defaultAuditWindow = 24 * time.Hour
	maxAuditWindow     = 31 * 24 * time.Hour
)

// AuditQuery filters the decision trail. Zero bounds default to the last day.
type AuditQuery struct {
	From     time.Time
	To       time.Time
	ActorID  string
	ClientID string
}

// IAuditQueryService reads back the access decisions recorded by client operations.
type IAuditQueryService interface {
	QueryLogs(ctx context.Context, actor model.Actor, query AuditQuery) ([]audit.AuditLog, error)
}

// AuditQueryService lets employees whose role carries READ search the trail.
// Clients never can.
type AuditQueryService struct {
	auditService audit.Service
	rolePolicy   engine.RolePolicy
}

var _ IAuditQueryService = (*AuditQueryService)(nil)

func NewAuditQueryService(auditService audit.Service, rolePolicy engine.RolePolicy) *AuditQueryService {
	return &AuditQueryService{
		auditService: auditService,
		rolePolicy:   rolePolicy,
	}
}

func (s *AuditQueryService) QueryLogs(ctx context.Context, actor model.Actor, query AuditQuery) ([]audit.AuditLog, error) {
	if actor == nil {
		return nil, shop_errors.ErrUnauthenticated
	}
	employee, ok := actor.(*model.EmployeeActor)
	if !ok || employee == nil || s.rolePolicy == nil ||
		!s.rolePolicy.Permissions(employee.Role).Contains(model.PermissionRead) {
		logger.Warn("Audit query denied",
			zap.String("actorID", actor.ActorID()),
			zap.Stringer("actorKind", actor.Kind()))
		return nil, shop_errors.ErrForbidden
	}

	if query.To.IsZero() {
		query.To = time.Now().UTC()
	}
	if query.From.IsZero() {
		query.From = query.To.Add(-defaultAuditWindow)
	}
	if query.From.After(query.To) {
		return nil, fmt.Errorf("%w: from is after to", shop_errors.ErrInvalidAuditQuery)
	}
	if query.To.Sub(query.From) > maxAuditWindow {
		return nil, fmt.Errorf("%w: window exceeds %s", shop_errors.ErrInvalidAuditQuery, maxAuditWindow)
	}

	start := time.Now()
	logs, err := s.auditService.QueryLogs(ctx, query.From, query.To, query.ActorID, query.ClientID)
	if err != nil {
		if errors.Is(err, shop_errors.ErrAuditUnavailable) {
			return nil, err
		}
		logger.Error("Failed to query audit logs", zap.Error(err), zap.String("actorID", employee.ID))
		return nil, fmt.Errorf("%w: %v", shop_errors.ErrInternalServer, err)
	}
	if logs == nil {
		logs = []audit.AuditLog{}
	}

	logger.Info("Audit logs queried",
		zap.String("actorID", employee.ID),
		zap.Time("from", query.From),
		zap.Time("to", query.To),
		zap.Int("count", len(logs)),
		zap.Duration("duration", time.Since(start)))
	return logs, nil
}

// api/service/services.go
package service

import (
	"github.com/dev-mohitbeniwal/shop/api/audit"
	"github.com/dev-mohitbeniwal/shop/api/dao"
	"github.com/dev-mohitbeniwal/shop/api/pdp/engine"
	"github.com/dev-mohitbeniwal/shop/api/util"
)

type Services struct {
	Client     IClientService
	AuditQuery IAuditQueryService
}

func InitializeServices(
	store dao.ClientStore,
	rolePolicy engine.RolePolicy,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService util.ClientCache,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	evaluators := engine.NewEvaluators(
		engine.NewClientEvaluator(),
		engine.NewEmployeeEvaluator(rolePolicy),
	)

	services := &Services{
		Client:     NewClientService(store, evaluators, validationUtil, cacheService, auditService, notificationSvc, eventBus),
		AuditQuery: NewAuditQueryService(auditService, rolePolicy),
	}

	return services, nil
}

// api/service/client_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/dev-mohitbeniwal/shop/api/audit"
	"github.com/dev-mohitbeniwal/shop/api/dao"
	shop_errors "github.com/dev-mohitbeniwal/shop/api/errors"
	logger "github.com/dev-mohitbeniwal/shop/api/logging"
	"github.com/dev-mohitbeniwal/shop/api/model"
	"github.com/dev-mohitbeniwal/shop/api/pdp/engine"
	pdp_model "github.com/dev-mohitbeniwal/shop/api/pdp/model"
	"github.com/dev-mohitbeniwal/shop/api/util"
	"github.com/dev-mohitbeniwal/shop/api/view"
)

const (
	outcomeSucceeded = "succeeded"
	outcomeDenied    = "denied"
	outcomeFailed    = "failed"
)

// IClientService runs every client operation for a resolved actor and returns
// the response body rendered under the view of the permission that gated it.
type IClientService interface {
	CreateClient(ctx context.Context, actor model.Actor, body []byte) ([]byte, error)
	UpdateClient(ctx context.Context, actor model.Actor, clientID string, body []byte) ([]byte, error)
	DeleteClient(ctx context.Context, actor model.Actor, clientID string) error
	GetClient(ctx context.Context, actor model.Actor, clientID string) ([]byte, error)
	ListClients(ctx context.Context, actor model.Actor) ([]byte, error)
}

type ClientService struct {
	store           dao.ClientStore
	evaluators      *engine.Evaluators
	validationUtil  *util.ValidationUtil
	cacheService    util.ClientCache
	auditService    audit.Service
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
	hashCost        int
}

var _ IClientService = &ClientService{}

func NewClientService(
	store dao.ClientStore,
	evaluators *engine.Evaluators,
	validationUtil *util.ValidationUtil,
	cacheService util.ClientCache,
	auditService audit.Service,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *ClientService {
	service := &ClientService{
		store:           store,
		evaluators:      evaluators,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		auditService:    auditService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		hashCost:        bcrypt.DefaultCost,
	}

	eventBus.Subscribe(util.EventClientCreated, service.handleClientCreated)
	eventBus.Subscribe(util.EventClientUpdated, service.handleClientUpdated)
	eventBus.Subscribe(util.EventClientDeleted, service.handleClientDeleted)

	return service
}

func (s *ClientService) CreateClient(ctx context.Context, actor model.Actor, body []byte) ([]byte, error) {
	if actor == nil {
		return nil, shop_errors.ErrUnauthenticated
	}
	serializer := view.For(model.PermissionCreate, actor.Kind())

	candidate, err := serializer.Unmarshal(body)
	if err != nil {
		return nil, err
	}

	decision, err := s.evaluators.Decide(actor, candidate, model.PermissionCreate)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed() {
		s.record(ctx, decision, outcomeDenied, nil)
		return nil, shop_errors.ErrForbidden
	}

	requirePassword := false
	switch a := actor.(type) {
	case *model.ClientActor:
		candidate.ID = a.ID
		requirePassword = true
	case *model.EmployeeActor:
		candidate.ID = ""
	default:
		return nil, fmt.Errorf("%w: %s", shop_errors.ErrNoEvaluator, actor.Kind())
	}

	if err := s.validationUtil.ValidateClient(*candidate, requirePassword); err != nil {
		s.record(ctx, decision, outcomeFailed, nil)
		return nil, err
	}
	if err := s.hashPassword(candidate, ""); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	id, err := s.store.Create(ctx, candidate)
	if err != nil {
		logger.Error("Failed to create client", zap.Error(err), zap.String("actorID", actor.ActorID()))
		s.record(ctx, decision, outcomeFailed, nil)
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	candidate.ID = id
	decision.TargetID = id

	s.cache(ctx, *candidate)
	s.eventBus.Publish(ctx, util.EventClientCreated, s.change(actor, candidate))
	s.record(ctx, decision, outcomeSucceeded, nil)

	logger.Info("Client created",
		zap.String("clientID", id),
		zap.String("actorID", actor.ActorID()),
		zap.String("actorKind", actor.Kind().String()))
	return s.render(serializer, candidate)
}

func (s *ClientService) UpdateClient(ctx context.Context, actor model.Actor, clientID string, body []byte) ([]byte, error) {
	if actor == nil {
		return nil, shop_errors.ErrUnauthenticated
	}
	serializer := view.For(model.PermissionUpdate, actor.Kind())

	original, err := s.store.FindByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load client for update: %w", err)
	}

	decision, err := s.evaluators.Decide(actor, original, model.PermissionUpdate)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed() {
		s.record(ctx, decision, outcomeDenied, nil)
		return nil, shop_errors.ErrForbidden
	}

	snapshot, err := serializer.Marshal(original)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shop_errors.ErrInternalServer, err)
	}

	updated, err := serializer.Unmarshal(body)
	if err != nil {
		s.record(ctx, decision, outcomeFailed, snapshot)
		return nil, err
	}
	serializer.Preserve(original, updated)

	if err := s.validationUtil.ValidateClient(*updated, false); err != nil {
		s.record(ctx, decision, outcomeFailed, snapshot)
		return nil, err
	}
	if err := s.hashPassword(updated, original.PasswordHash); err != nil {
		return nil, err
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, updated); err != nil {
		logger.Error("Failed to update client", zap.Error(err), zap.String("clientID", clientID))
		s.record(ctx, decision, outcomeFailed, snapshot)
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	s.invalidate(ctx, clientID)
	s.eventBus.Publish(ctx, util.EventClientUpdated, s.change(actor, updated))
	s.record(ctx, decision, outcomeSucceeded, snapshot)

	logger.Info("Client updated",
		zap.String("clientID", clientID),
		zap.String("actorID", actor.ActorID()),
		zap.String("actorKind", actor.Kind().String()))
	return s.render(serializer, updated)
}

func (s *ClientService) DeleteClient(ctx context.Context, actor model.Actor, clientID string) error {
	if actor == nil {
		return shop_errors.ErrUnauthenticated
	}

	original, err := s.store.FindByID(ctx, clientID)
	if err != nil {
		return fmt.Errorf("failed to load client for delete: %w", err)
	}

	decision, err := s.evaluators.Decide(actor, original, model.PermissionDelete)
	if err != nil {
		return err
	}
	if !decision.Allowed() {
		s.record(ctx, decision, outcomeDenied, nil)
		return shop_errors.ErrForbidden
	}

	tombstone, err := view.For(model.PermissionDelete, actor.Kind()).Marshal(original)
	if err != nil {
		return fmt.Errorf("%w: %v", shop_errors.ErrInternalServer, err)
	}

	if err := s.store.DeleteByID(ctx, clientID); err != nil {
		logger.Error("Failed to delete client", zap.Error(err), zap.String("clientID", clientID))
		s.record(ctx, decision, outcomeFailed, tombstone)
		return fmt.Errorf("failed to delete client: %w", err)
	}

	s.invalidate(ctx, clientID)
	s.eventBus.Publish(ctx, util.EventClientDeleted, s.change(actor, original))
	s.record(ctx, decision, outcomeSucceeded, tombstone)

	logger.Info("Client deleted",
		zap.String("clientID", clientID),
		zap.String("actorID", actor.ActorID()),
		zap.String("actorKind", actor.Kind().String()))
	return nil
}

func (s *ClientService) GetClient(ctx context.Context, actor model.Actor, clientID string) ([]byte, error) {
	if actor == nil {
		return nil, shop_errors.ErrUnauthenticated
	}

	target, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}

	decision, err := s.evaluators.Decide(actor, target, model.PermissionRead)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed() {
		s.record(ctx, decision, outcomeDenied, nil)
		return nil, shop_errors.ErrForbidden
	}
	s.record(ctx, decision, outcomeSucceeded, nil)

	return s.render(view.For(model.PermissionRead, actor.Kind()), target)
}

func (s *ClientService) ListClients(ctx context.Context, actor model.Actor) ([]byte, error) {
	if actor == nil {
		return nil, shop_errors.ErrUnauthenticated
	}

	all, err := s.store.All(ctx)
	if err != nil {
		logger.Error("Failed to list clients", zap.Error(err))
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	var evalErr error
	visible := lo.Filter(all, func(client *model.Client, _ int) bool {
		granted, err := s.evaluators.Evaluate(actor, client)
		if err != nil {
			evalErr = err
			return false
		}
		return granted.Contains(model.PermissionRead)
	})
	if evalErr != nil {
		return nil, evalErr
	}

	s.log(ctx, audit.AuditLog{
		UserID:        actor.ActorID(),
		ActorKind:     actor.Kind().String(),
		Action:        model.PermissionRead.String(),
		AccessGranted: len(visible) > 0,
		Outcome:       fmt.Sprintf("listed %d of %d", len(visible), len(all)),
	})

	logger.Debug("Clients listed",
		zap.String("actorID", actor.ActorID()),
		zap.Int("visible", len(visible)),
		zap.Int("total", len(all)))
	out, err := view.For(model.PermissionRead, actor.Kind()).MarshalList(visible)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shop_errors.ErrInternalServer, err)
	}
	return out, nil
}

// load reads through the cache. A cache failure falls back to the store.
func (s *ClientService) load(ctx context.Context, clientID string) (*model.Client, error) {
	cached, err := s.cacheService.GetClient(ctx, clientID)
	if err != nil {
		logger.Warn("Failed to get client from cache", zap.Error(err), zap.String("clientID", clientID))
	}
	if cached != nil {
		return cached, nil
	}

	client, err := s.store.FindByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	s.cache(ctx, *client)
	return client, nil
}

func (s *ClientService) cache(ctx context.Context, client model.Client) {
	if err := s.cacheService.SetClient(ctx, client); err != nil {
		logger.Warn("Failed to cache client", zap.Error(err), zap.String("clientID", client.ID))
	}
}

func (s *ClientService) invalidate(ctx context.Context, clientID string) {
	if err := s.cacheService.DeleteClient(ctx, clientID); err != nil {
		logger.Warn("Failed to invalidate client cache", zap.Error(err), zap.String("clientID", clientID))
	}
}

// hashPassword replaces a plaintext password with its hash, or keeps
// existingHash when no new password was given.
func (s *ClientService) hashPassword(client *model.Client, existingHash string) error {
	if client.Password == "" {
		client.PasswordHash = existingHash
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(client.Password), s.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return fmt.Errorf("%w: password is too long", shop_errors.ErrInvalidClientData)
	}
	if err != nil {
		return fmt.Errorf("%w: hash password: %v", shop_errors.ErrInternalServer, err)
	}
	client.PasswordHash = string(hash)
	client.Password = ""
	return nil
}

func (s *ClientService) render(serializer view.Serializer, client *model.Client) ([]byte, error) {
	out, err := serializer.Marshal(client)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shop_errors.ErrInternalServer, err)
	}
	return out, nil
}

func (s *ClientService) change(actor model.Actor, client *model.Client) util.ClientChange {
	c := *client
	c.Password = ""
	c.PasswordHash = ""
	return util.ClientChange{
		ActorID:   actor.ActorID(),
		ActorKind: actor.Kind().String(),
		Client:    c,
	}
}

func (s *ClientService) record(ctx context.Context, decision pdp_model.AccessDecision, outcome string, details []byte) {
	s.log(ctx, audit.AuditLog{
		UserID:        decision.ActorID,
		ActorKind:     decision.ActorKind,
		Action:        decision.Required.String(),
		ResourceID:    decision.TargetID,
		Granted:       decision.Granted.Strings(),
		AccessGranted: decision.Allowed(),
		Outcome:       outcome,
		ChangeDetails: details,
	})
}

func (s *ClientService) log(ctx context.Context, entry audit.AuditLog) {
	if err := s.auditService.LogAccess(ctx, entry); err != nil {
		logger.Warn("Failed to write audit log", zap.Error(err), zap.String("action", entry.Action))
	}
}

func (s *ClientService) handleClientCreated(ctx context.Context, event util.Event) error {
	change, ok := event.Payload.(util.ClientChange)
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}
	if err := s.notificationSvc.NotifyClientChange(ctx, "created", change); err != nil {
		logger.Warn("Failed to send client creation notification", zap.Error(err), zap.String("clientID", change.Client.ID))
	}
	if change.Client.Email == "" {
		return nil
	}
	return s.notificationSvc.SendEmail(ctx, change.Client.Email, "Welcome", "Your client account is ready.")
}

func (s *ClientService) handleClientUpdated(ctx context.Context, event util.Event) error {
	change, ok := event.Payload.(util.ClientChange)
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}
	return s.notificationSvc.NotifyClientChange(ctx, "updated", change)
}

func (s *ClientService) handleClientDeleted(ctx context.Context, event util.Event) error {
	change, ok := event.Payload.(util.ClientChange)
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}
	return s.notificationSvc.NotifyClientChange(ctx, "deleted", change)
}

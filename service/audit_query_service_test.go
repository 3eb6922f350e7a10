package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/shop/api/audit"
	shop_errors "github.com/dev-mohitbeniwal/shop/api/errors"
	"github.com/dev-mohitbeniwal/shop/api/model"
	"github.com/dev-mohitbeniwal/shop/api/pdp/engine"
	mocks "github.com/dev-mohitbeniwal/shop/api/test/mock"
)

func newAuditQueryService(t *testing.T) (*AuditQueryService, *mocks.MockAuditService) {
	t.Helper()
	roles, err := engine.RoleTableFromConfig(map[string][]string{
		"support": {"READ", "UPDATE", "DELETE"},
		"sales":   {"CREATE"},
	})
	require.NoError(t, err)
	auditSvc := new(mocks.MockAuditService)
	return NewAuditQueryService(auditSvc, roles), auditSvc
}

func TestAuditQuery_OnlyEmployeesWithRead(t *testing.T) {
	svc, auditSvc := newAuditQueryService(t)
	ctx := context.Background()

	for name, actor := range map[string]model.Actor{
		"client":        clientOne,
		"role lacks it": &model.EmployeeActor{ID: "e2", Role: "sales"},
		"unknown role":  unknownRole,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.QueryLogs(ctx, actor, AuditQuery{})
			assert.ErrorIs(t, err, shop_errors.ErrForbidden)
		})
	}

	_, err := svc.QueryLogs(ctx, nil, AuditQuery{})
	assert.ErrorIs(t, err, shop_errors.ErrUnauthenticated)

	auditSvc.AssertNotCalled(t, "QueryLogs", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuditQuery_PassesFiltersThrough(t *testing.T) {
	svc, auditSvc := newAuditQueryService(t)
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(6 * time.Hour)
	trail := []audit.AuditLog{{UserID: "1", Action: "READ", ResourceID: "2", AccessGranted: false}}

	auditSvc.On("QueryLogs", mock.Anything, from, to, "1", "2").Return(trail, nil).Once()

	logs, err := svc.QueryLogs(context.Background(), support, AuditQuery{From: from, To: to, ActorID: "1", ClientID: "2"})
	require.NoError(t, err)
	assert.Equal(t, trail, logs)
	auditSvc.AssertExpectations(t)
}

func TestAuditQuery_DefaultsToLastDay(t *testing.T) {
	svc, auditSvc := newAuditQueryService(t)

	auditSvc.On("QueryLogs", mock.Anything,
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), "", "").
		Return(nil, nil).Once()

	logs, err := svc.QueryLogs(context.Background(), support, AuditQuery{})
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)

	call := auditSvc.Calls[0]
	from, to := call.Arguments.Get(1).(time.Time), call.Arguments.Get(2).(time.Time)
	assert.Equal(t, defaultAuditWindow, to.Sub(from))
	assert.WithinDuration(t, time.Now(), to, time.Minute)
}

func TestAuditQuery_Errors(t *testing.T) {
	svc, auditSvc := newAuditQueryService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := svc.QueryLogs(ctx, support, AuditQuery{From: now, To: now.Add(-time.Hour)})
	assert.ErrorIs(t, err, shop_errors.ErrInvalidAuditQuery)

	_, err = svc.QueryLogs(ctx, support, AuditQuery{From: now.Add(-90 * 24 * time.Hour), To: now})
	assert.ErrorIs(t, err, shop_errors.ErrInvalidAuditQuery)

	auditSvc.On("QueryLogs", mock.Anything, mock.Anything, mock.Anything, "unavailable", "").
		Return(nil, shop_errors.ErrAuditUnavailable).Once()
	_, err = svc.QueryLogs(ctx, support, AuditQuery{ActorID: "unavailable"})
	assert.ErrorIs(t, err, shop_errors.ErrAuditUnavailable)

	auditSvc.On("QueryLogs", mock.Anything, mock.Anything, mock.Anything, "broken", "").
		Return(nil, errors.New("search timed out")).Once()
	_, err = svc.QueryLogs(ctx, support, AuditQuery{ActorID: "broken"})
	assert.ErrorIs(t, err, shop_errors.ErrInternalServer)
}

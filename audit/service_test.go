package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	shop_errors "github.com/dev-mohitbeniwal/shop/api/errors"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) LogAccess(ctx context.Context, log AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *mockRepository) QueryLogs(ctx context.Context, from, to time.Time, userID, resourceID string) ([]AuditLog, error) {
	args := m.Called(ctx, from, to, userID, resourceID)
	if logs := args.Get(0); logs != nil {
		return logs.([]AuditLog), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestService_LogAccessStampsTimestamp(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("LogAccess", mock.Anything, mock.MatchedBy(func(l AuditLog) bool {
		return !l.Timestamp.IsZero() && l.Action == "DELETE" && l.ResourceID == "2"
	})).Return(nil).Once()

	require.NoError(t, svc.LogAccess(context.Background(), AuditLog{Action: "DELETE", ResourceID: "2"}))
	repo.AssertExpectations(t)
}

func TestService_QueryLogsDelegates(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)
	from, to := time.Now().Add(-time.Hour), time.Now()

	repo.On("QueryLogs", mock.Anything, from, to, "1", "").Return([]AuditLog{{UserID: "1"}}, nil).Once()

	logs, err := svc.QueryLogs(context.Background(), from, to, "1", "")
	require.NoError(t, err)
	assert.Len(t, logs, 1)
	repo.AssertExpectations(t)
}

func TestLogRepository(t *testing.T) {
	repo := NewLogRepository()
	assert.NoError(t, repo.LogAccess(context.Background(), AuditLog{Action: "READ", ChangeDetails: []byte(`{"id":"1"}`)}))
	_, err := repo.QueryLogs(context.Background(), time.Time{}, time.Now(), "", "")
	assert.ErrorIs(t, err, shop_errors.ErrAuditUnavailable)
}

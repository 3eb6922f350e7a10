// test/mock/audit.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/shop/api/audit"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

var _ audit.Service = (*MockAuditService)(nil)

func (m *MockAuditService) LogAccess(ctx context.Context, log audit.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditService) QueryLogs(ctx context.Context, from, to time.Time, userID, resourceID string) ([]audit.AuditLog, error) {
	args := m.Called(ctx, from, to, userID, resourceID)
	if logs := args.Get(0); logs != nil {
		return logs.([]audit.AuditLog), args.Error(1)
	}
	return nil, args.Error(1)
}

// Logged returns every audit log recorded through LogAccess, in call order.
func (m *MockAuditService) Logged() []audit.AuditLog {
	var logs []audit.AuditLog
	for _, call := range m.Calls {
		if call.Method == "LogAccess" {
			logs = append(logs, call.Arguments.Get(1).(audit.AuditLog))
		}
	}
	return logs
}

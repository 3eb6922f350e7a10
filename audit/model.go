// api/audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

// AuditLog is one access decision on a client record.
type AuditLog struct {
	Timestamp     time.Time       `json:"timestamp"`
	UserID        string          `json:"user_id"`
	ActorKind     string          `json:"actor_kind"`
	Action        string          `json:"action"`
	ResourceID    string          `json:"resource_id,omitempty"`
	Granted       []string        `json:"granted"`
	AccessGranted bool            `json:"access_granted"`
	Outcome       string          `json:"outcome,omitempty"`
	ChangeDetails json.RawMessage `json:"change_details,omitempty"`
}

// api/model/actor.go
package model

// ActorKind identifies which realm resolved the requester.
type ActorKind int

const (
	ActorKindUnknown ActorKind = iota
	ActorKindClient
	ActorKindEmployee
)

func (k ActorKind) String() string {
	switch k {
	case ActorKindClient:
		return "client"
	case ActorKindEmployee:
		return "employee"
	default:
		return "unknown"
	}
}

// Actor is the resolved requester. Only ClientActor and EmployeeActor implement it;
// an unauthenticated request carries no Actor at all.
type Actor interface {
	Kind() ActorKind
	ActorID() string
	isActor()
}

// ClientActor is a client acting on its own behalf.
type ClientActor struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (a *ClientActor) Kind() ActorKind { return ActorKindClient }
func (a *ClientActor) ActorID() string { return a.ID }
func (a *ClientActor) isActor()        {}

// EmployeeActor is a staff member; what it may do is decided by Role.
type EmployeeActor struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
}

func (a *EmployeeActor) Kind() ActorKind { return ActorKindEmployee }
func (a *EmployeeActor) ActorID() string { return a.ID }
func (a *EmployeeActor) isActor()        {}

var (
	_ Actor = (*ClientActor)(nil)
	_ Actor = (*EmployeeActor)(nil)
)

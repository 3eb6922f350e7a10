package engine

import (
	"github.com/dev-mohitbeniwal/shop/api/model"
)

// RolePolicy maps an employee role to the permissions it carries.
type RolePolicy interface {
	Permissions(role string) model.PermissionSet
}

// EmployeeEvaluator grants whatever the role table says for the employee's role,
// regardless of which client is targeted.
type EmployeeEvaluator struct {
	policy RolePolicy
}

func NewEmployeeEvaluator(policy RolePolicy) *EmployeeEvaluator {
	return &EmployeeEvaluator{policy: policy}
}

func (ee *EmployeeEvaluator) Evaluate(actor model.Actor, target *model.Client) model.PermissionSet {
	employee, ok := actor.(*model.EmployeeActor)
	if !ok || employee == nil || target == nil || ee.policy == nil {
		return 0
	}
	return ee.policy.Permissions(employee.Role)
}

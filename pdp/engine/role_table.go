package engine

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	shop_errors "github.com/dev-mohitbeniwal/shop/api/errors"
	"github.com/dev-mohitbeniwal/shop/api/model"
)

// RoleTable is an immutable, case-insensitive role → permissions table.
type RoleTable struct {
	roles map[string]model.PermissionSet
}

var _ RolePolicy = RoleTable{}

func NewRoleTable(roles map[string]model.PermissionSet) RoleTable {
	return RoleTable{
		roles: lo.MapKeys(roles, func(_ model.PermissionSet, role string) string {
			return normalizeRole(role)
		}),
	}
}

// RoleTableFromConfig parses the policy.roles section, e.g. {"support": ["READ", "DELETE"]}.
// Role names that collide once case and surrounding space are ignored are rejected.
func RoleTableFromConfig(roles map[string][]string) (RoleTable, error) {
	parsed := make(map[string]model.PermissionSet, len(roles))
	seen := make(map[string]string, len(roles))
	for role, names := range roles {
		name := normalizeRole(role)
		if name == "" {
			return RoleTable{}, fmt.Errorf("%w: empty role name", shop_errors.ErrInvalidRole)
		}
		if other, dup := seen[name]; dup {
			return RoleTable{}, fmt.Errorf("%w: roles %q and %q name the same role", shop_errors.ErrInvalidRole, other, role)
		}
		seen[name] = role
		set, err := model.ParsePermissionSet(names)
		if err != nil {
			return RoleTable{}, fmt.Errorf("%w: role %q: %v", shop_errors.ErrInvalidRole, role, err)
		}
		parsed[role] = set
	}
	return NewRoleTable(parsed), nil
}

// Permissions returns the empty set for unknown roles.
func (rt RoleTable) Permissions(role string) model.PermissionSet {
	return rt.roles[normalizeRole(role)]
}

func (rt RoleTable) Roles() []string {
	return lo.Keys(rt.roles)
}

func normalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

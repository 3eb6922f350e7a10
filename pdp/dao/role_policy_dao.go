package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/samber/lo"
	"go.uber.org/zap"

	shop_errors "github.com/dev-mohitbeniwal/shop/api/errors"
	logger "github.com/dev-mohitbeniwal/shop/api/logging"
	"github.com/dev-mohitbeniwal/shop/api/model"
	shop_neo4j "github.com/dev-mohitbeniwal/shop/api/model/neo4j"
	"github.com/dev-mohitbeniwal/shop/api/pdp/engine"
)

// RolePolicyDAO reads and writes the employee role table kept as EmployeeRole nodes.
type RolePolicyDAO struct {
	Driver neo4j.DriverWithContext
}

func NewRolePolicyDAO(driver neo4j.DriverWithContext) *RolePolicyDAO {
	return &RolePolicyDAO{Driver: driver}
}

func (dao *RolePolicyDAO) EnsureUniqueConstraint(ctx context.Context) error {
	session := dao.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := neo4j.ExecuteWrite(ctx, session, func(tx neo4j.ManagedTransaction) (any, error) {
		query := `
        CREATE CONSTRAINT ` + shop_neo4j.ConstraintRoleName + ` IF NOT EXISTS
        FOR (r:` + shop_neo4j.LabelEmployeeRole + `) REQUIRE r.name IS UNIQUE
        `
		_, err := tx.Run(ctx, query, nil)
		return nil, err
	})
	if err != nil {
		logger.Error("Failed to ensure unique constraint on EmployeeRole name", zap.Error(err))
		return err
	}
	return nil
}

// UpsertRole stores the permissions of one role, replacing any previous value.
func (dao *RolePolicyDAO) UpsertRole(ctx context.Context, role string, permissions model.PermissionSet) error {
	session := dao.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := neo4j.ExecuteWrite(ctx, session, func(tx neo4j.ManagedTransaction) (any, error) {
		query := `
        MERGE (r:` + shop_neo4j.LabelEmployeeRole + ` {name: $name})
        SET r.permissions = $permissions, r.updatedAt = $updatedAt
        `
		_, err := tx.Run(ctx, query, map[string]any{
			"name":        role,
			"permissions": permissions.Strings(),
			"updatedAt":   time.Now().Format(time.RFC3339),
		})
		return nil, err
	})
	if err != nil {
		logger.Error("Failed to upsert employee role", zap.Error(err), zap.String("role", role))
		return shop_errors.ErrDatabaseOperation
	}
	return nil
}

// LoadRoleTable reads every EmployeeRole node into a RoleTable.
func (dao *RolePolicyDAO) LoadRoleTable(ctx context.Context) (engine.RoleTable, error) {
	start := time.Now()
	logger.Info("Loading employee role table")

	session := dao.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	roles, err := neo4j.ExecuteRead(ctx, session, func(tx neo4j.ManagedTransaction) (map[string][]string, error) {
		query := `
        MATCH (r:` + shop_neo4j.LabelEmployeeRole + `)
        RETURN r.name AS name, r.permissions AS permissions
        `
		result, err := tx.Run(ctx, query, nil)
		if err != nil {
			return nil, err
		}

		roles := make(map[string][]string)
		for result.Next(ctx) {
			record := result.Record()
			name, _, err := neo4j.GetRecordValue[string](record, "name")
			if err != nil {
				return nil, fmt.Errorf("role name: %w", err)
			}
			raw, _, err := neo4j.GetRecordValue[[]any](record, "permissions")
			if err != nil {
				return nil, fmt.Errorf("role %q permissions: %w", name, err)
			}
			roles[name] = permissionNames(raw)
		}
		return roles, result.Err()
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to load employee role table", zap.Error(err), zap.Duration("duration", duration))
		return engine.RoleTable{}, shop_errors.ErrDatabaseOperation
	}

	table, err := engine.RoleTableFromConfig(roles)
	if err != nil {
		return engine.RoleTable{}, err
	}

	logger.Info("Employee role table loaded",
		zap.Int("roles", len(roles)),
		zap.Duration("duration", duration))
	return table, nil
}

func permissionNames(raw []any) []string {
	return lo.Map(raw, func(p any, _ int) string {
		return fmt.Sprintf("%v", p)
	})
}

// api/dao/client_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	shop_errors "github.com/dev-mohitbeniwal/shop/api/errors"
	logger "github.com/dev-mohitbeniwal/shop/api/logging"
	"github.com/dev-mohitbeniwal/shop/api/model"
	shop_neo4j "github.com/dev-mohitbeniwal/shop/api/model/neo4j"
	helper_util "github.com/dev-mohitbeniwal/shop/api/util/helper"
)

type ClientDAO struct {
	Driver neo4j.DriverWithContext
}

var _ ClientStore = (*ClientDAO)(nil)

func NewClientDAO(ctx context.Context, driver neo4j.DriverWithContext) (*ClientDAO, error) {
	dao := &ClientDAO{Driver: driver}
	if err := dao.EnsureUniqueConstraints(ctx); err != nil {
		return nil, err
	}
	return dao, nil
}

func (dao *ClientDAO) EnsureUniqueConstraints(ctx context.Context) error {
	logger.Info("Ensuring unique constraints on Client")
	session := dao.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	queries := []string{
		`CREATE CONSTRAINT ` + shop_neo4j.ConstraintClientID + ` IF NOT EXISTS
        FOR (c:` + shop_neo4j.LabelClient + `) REQUIRE c.id IS UNIQUE`,
		`CREATE CONSTRAINT ` + shop_neo4j.ConstraintClientEmail + ` IF NOT EXISTS
        FOR (c:` + shop_neo4j.LabelClient + `) REQUIRE c.email IS UNIQUE`,
	}
	for _, query := range queries {
		result, err := session.Run(ctx, query, nil)
		if err == nil {
			_, err = result.Consume(ctx)
		}
		if err != nil {
			logger.Error("Failed to ensure unique constraint on Client", zap.Error(err))
			return err
		}
	}

	logger.Info("Successfully ensured unique constraints on Client")
	return nil
}

func (dao *ClientDAO) Create(ctx context.Context, client *model.Client) (string, error) {
	start := time.Now()
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	logger.Info("Creating new client", zap.String("clientID", client.ID))

	session := dao.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := neo4j.ExecuteWrite(ctx, session, func(tx neo4j.ManagedTransaction) (any, error) {
		query := `
        CREATE (c:` + shop_neo4j.LabelClient + `)
        SET c = $props
        RETURN c.id AS id
        `
		result, err := tx.Run(ctx, query, map[string]any{"props": clientProps(client)})
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create client",
			zap.Error(err),
			zap.String("clientID", client.ID),
			zap.Duration("duration", duration))
		return "", mapWriteError(err)
	}

	logger.Info("Client created successfully",
		zap.String("clientID", client.ID),
		zap.Duration("duration", duration))
	return client.ID, nil
}

func (dao *ClientDAO) Update(ctx context.Context, client *model.Client) error {
	start := time.Now()
	logger.Info("Updating client", zap.String("clientID", client.ID))

	session := dao.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := neo4j.ExecuteWrite(ctx, session, func(tx neo4j.ManagedTransaction) (any, error) {
		query := `
        MATCH (c:` + shop_neo4j.LabelClient + ` {id: $id})
        SET c = $props
        RETURN c.id AS id
        `
		result, err := tx.Run(ctx, query, map[string]any{
			"id":    client.ID,
			"props": clientProps(client),
		})
		if err != nil {
			return nil, err
		}
		if result.Next(ctx) {
			return nil, nil
		}
		if err := result.Err(); err != nil {
			return nil, err
		}
		return nil, shop_errors.ErrClientNotFound
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to update client",
			zap.Error(err),
			zap.String("clientID", client.ID),
			zap.Duration("duration", duration))
		return mapWriteError(err)
	}

	logger.Info("Client updated successfully",
		zap.String("clientID", client.ID),
		zap.Duration("duration", duration))
	return nil
}

func (dao *ClientDAO) DeleteByID(ctx context.Context, id string) error {
	start := time.Now()
	logger.Info("Deleting client", zap.String("clientID", id))

	session := dao.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := neo4j.ExecuteWrite(ctx, session, func(tx neo4j.ManagedTransaction) (any, error) {
		query := `
        MATCH (c:` + shop_neo4j.LabelClient + ` {id: $id})
        DETACH DELETE c
        `
		result, err := tx.Run(ctx, query, map[string]any{"id": id})
		if err != nil {
			return nil, err
		}

		summary, err := result.Consume(ctx)
		if err != nil {
			return nil, err
		}

		if summary.Counters().NodesDeleted() == 0 {
			return nil, shop_errors.ErrClientNotFound
		}
		return nil, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to delete client",
			zap.Error(err),
			zap.String("clientID", id),
			zap.Duration("duration", duration))
		return mapWriteError(err)
	}

	logger.Info("Client deleted successfully",
		zap.String("clientID", id),
		zap.Duration("duration", duration))
	return nil
}

func (dao *ClientDAO) FindByID(ctx context.Context, id string) (*model.Client, error) {
	start := time.Now()
	logger.Debug("Retrieving client", zap.String("clientID", id))

	session := dao.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	client, err := neo4j.ExecuteRead(ctx, session, func(tx neo4j.ManagedTransaction) (*model.Client, error) {
		query := `
        MATCH (c:` + shop_neo4j.LabelClient + ` {id: $id})
        RETURN c
        `
		result, err := tx.Run(ctx, query, map[string]any{"id": id})
		if err != nil {
			return nil, err
		}
		if !result.Next(ctx) {
			if err := result.Err(); err != nil {
				return nil, err
			}
			return nil, shop_errors.ErrClientNotFound
		}
		node, _, err := neo4j.GetRecordValue[neo4j.Node](result.Record(), "c")
		if err != nil {
			return nil, err
		}
		return mapNodeToClient(node)
	})

	duration := time.Since(start)
	if err != nil {
		if errors.Is(err, shop_errors.ErrClientNotFound) {
			logger.Warn("Client not found", zap.String("clientID", id), zap.Duration("duration", duration))
			return nil, shop_errors.ErrClientNotFound
		}
		logger.Error("Failed to retrieve client",
			zap.Error(err),
			zap.String("clientID", id),
			zap.Duration("duration", duration))
		return nil, shop_errors.ErrDatabaseOperation
	}
	return client, nil
}

func (dao *ClientDAO) All(ctx context.Context) ([]*model.Client, error) {
	start := time.Now()
	logger.Debug("Listing clients")

	session := dao.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	clients, err := neo4j.ExecuteRead(ctx, session, func(tx neo4j.ManagedTransaction) ([]*model.Client, error) {
		query := `
        MATCH (c:` + shop_neo4j.LabelClient + `)
        RETURN c
        ORDER BY c.createdAt ASC, c.id ASC
        `
		result, err := tx.Run(ctx, query, nil)
		if err != nil {
			return nil, err
		}

		var clients []*model.Client
		for result.Next(ctx) {
			node, _, err := neo4j.GetRecordValue[neo4j.Node](result.Record(), "c")
			if err != nil {
				return nil, err
			}
			client, err := mapNodeToClient(node)
			if err != nil {
				return nil, err
			}
			clients = append(clients, client)
		}
		return clients, result.Err()
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to list clients", zap.Error(err), zap.Duration("duration", duration))
		return nil, shop_errors.ErrDatabaseOperation
	}

	logger.Debug("Clients listed successfully",
		zap.Int("count", len(clients)),
		zap.Duration("duration", duration))
	return clients, nil
}

// timestampLayout keeps every stored timestamp the same width, so ordering by
// the string property is ordering by time.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func clientProps(client *model.Client) map[string]any {
	return map[string]any{
		"id":            client.ID,
		"firstName":     client.FirstName,
		"lastName":      client.LastName,
		"email":         client.Email,
		"phone":         client.Phone,
		"address":       client.Address,
		"passwordHash":  client.PasswordHash,
		"creditLimit":   client.CreditLimit,
		"segment":       client.Segment,
		"internalNotes": client.InternalNotes,
		"createdAt":     client.CreatedAt.UTC().Format(timestampLayout),
		"updatedAt":     client.UpdatedAt.UTC().Format(timestampLayout),
	}
}

// Helper function to map Neo4j Node to Client struct
func mapNodeToClient(node neo4j.Node) (*model.Client, error) {
	props := node.Props
	client := &model.Client{
		ID:            propString(props, "id"),
		FirstName:     propString(props, "firstName"),
		LastName:      propString(props, "lastName"),
		Email:         propString(props, "email"),
		Phone:         propString(props, "phone"),
		Address:       propString(props, "address"),
		PasswordHash:  propString(props, "passwordHash"),
		Segment:       propString(props, "segment"),
		InternalNotes: propString(props, "internalNotes"),
	}
	if client.ID == "" {
		return nil, fmt.Errorf("client node %s has no id", node.ElementId)
	}

	switch v := props["creditLimit"].(type) {
	case float64:
		client.CreditLimit = v
	case int64:
		client.CreditLimit = float64(v)
	}

	var err error
	if client.CreatedAt, err = helper_util.ParseTime(propString(props, "createdAt")); err != nil {
		return nil, fmt.Errorf("client %s createdAt: %w", client.ID, err)
	}
	if client.UpdatedAt, err = helper_util.ParseTime(propString(props, "updatedAt")); err != nil {
		return nil, fmt.Errorf("client %s updatedAt: %w", client.ID, err)
	}
	return client, nil
}

func propString(props map[string]any, key string) string {
	s, _ := props[key].(string)
	return s
}

func mapWriteError(err error) error {
	if errors.Is(err, shop_errors.ErrClientNotFound) {
		return shop_errors.ErrClientNotFound
	}
	var neoErr *neo4j.Neo4jError
	if errors.As(err, &neoErr) && neoErr.Code == shop_neo4j.CodeConstraintValidationFailed {
		return shop_errors.ErrClientConflict
	}
	return shop_errors.ErrDatabaseOperation
}

// api/dao/client_store.go
package dao

import (
	"context"

	"github.com/dev-mohitbeniwal/shop/api/model"
)

// ClientStore persists client records. Each call is atomic on its own; callers
// add no locking around a read followed by a write.
type ClientStore interface {
	// FindByID returns errors.ErrClientNotFound when no record has id.
	FindByID(ctx context.Context, id string) (*model.Client, error)
	// All returns every record in a stable enumeration order.
	All(ctx context.Context) ([]*model.Client, error)
	// Create assigns an id when the record has none and returns it.
	// Duplicate ids or e-mails fail with errors.ErrClientConflict.
	Create(ctx context.Context, client *model.Client) (string, error)
	// Update replaces the record with the same id, or fails with errors.ErrClientNotFound.
	Update(ctx context.Context, client *model.Client) error
	// DeleteByID fails with errors.ErrClientNotFound when nothing was deleted.
	DeleteByID(ctx context.Context, id string) error
}

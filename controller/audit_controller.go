// api/controller/audit_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	shop_errors "github.com/dev-mohitbeniwal/shop/api/errors"
	"github.com/dev-mohitbeniwal/shop/api/service"
	"github.com/dev-mohitbeniwal/shop/api/util"
)

type AuditController struct {
	auditQueryService service.IAuditQueryService
}

func NewAuditController(auditQueryService service.IAuditQueryService) *AuditController {
	return &AuditController{
		auditQueryService: auditQueryService,
	}
}

func (ac *AuditController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/audit", ac.QueryLogs)
}

// QueryLogs endpoint. Accepts from and to as RFC3339 plus optional actor_id
// and client_id filters.
func (ac *AuditController) QueryLogs(c *gin.Context) {
	query := service.AuditQuery{
		ActorID:  c.Query("actor_id"),
		ClientID: c.Query("client_id"),
	}
	var err error
	if query.From, err = queryTime(c, "from"); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid audit query", err)
		return
	}
	if query.To, err = queryTime(c, "to"); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid audit query", err)
		return
	}

	logs, err := ac.auditQueryService.QueryLogs(c.Request.Context(), util.GetActorFromContext(c), query)
	if err != nil {
		if respondAccessError(c, err) {
			return
		}
		switch {
		case errors.Is(err, shop_errors.ErrInvalidAuditQuery):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid audit query", err)
		case errors.Is(err, shop_errors.ErrAuditUnavailable):
			util.RespondWithError(c, http.StatusNotImplemented, "Audit queries are not available", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to query audit logs", err)
		}
		return
	}
	c.JSON(http.StatusOK, logs)
}

func queryTime(c *gin.Context, key string) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %v", shop_errors.ErrInvalidAuditQuery, key, err)
	}
	return t, nil
}

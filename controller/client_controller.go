// api/controller/client_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	shop_errors "github.com/dev-mohitbeniwal/shop/api/errors"
	"github.com/dev-mohitbeniwal/shop/api/service"
	"github.com/dev-mohitbeniwal/shop/api/util"
)

const jsonContentType = "application/json; charset=utf-8"

type ClientController struct {
	clientService service.IClientService
}

func NewClientController(clientService service.IClientService) *ClientController {
	return &ClientController{
		clientService: clientService,
	}
}

// RegisterRoutes registers the API routes
func (cc *ClientController) RegisterRoutes(r *gin.RouterGroup) {
	clients := r.Group("/clients")
	{
		clients.POST("", cc.CreateClient)
		clients.PUT("/:id", cc.UpdateClient)
		clients.DELETE("/:id", cc.DeleteClient)
		clients.GET("/:id", cc.GetClient)
		clients.GET("", cc.ListClients)
	}
}

// CreateClient endpoint
func (cc *ClientController) CreateClient(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid client data", shop_errors.ErrMalformedPayload)
		return
	}

	created, err := cc.clientService.CreateClient(c.Request.Context(), util.GetActorFromContext(c), body)
	if err != nil {
		respondWriteError(c, err, "Failed to create client")
		return
	}
	c.Data(http.StatusCreated, jsonContentType, created)
}

// UpdateClient endpoint
func (cc *ClientController) UpdateClient(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid client data", shop_errors.ErrMalformedPayload)
		return
	}

	updated, err := cc.clientService.UpdateClient(c.Request.Context(), util.GetActorFromContext(c), c.Param("id"), body)
	if err != nil {
		respondWriteError(c, err, "Failed to update client")
		return
	}
	c.Data(http.StatusOK, jsonContentType, updated)
}

// DeleteClient endpoint
func (cc *ClientController) DeleteClient(c *gin.Context) {
	err := cc.clientService.DeleteClient(c.Request.Context(), util.GetActorFromContext(c), c.Param("id"))
	if err != nil {
		respondWriteError(c, err, "Failed to delete client")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetClient endpoint
func (cc *ClientController) GetClient(c *gin.Context) {
	client, err := cc.clientService.GetClient(c.Request.Context(), util.GetActorFromContext(c), c.Param("id"))
	if err != nil {
		respondReadError(c, err, "Failed to get client")
		return
	}
	c.Data(http.StatusOK, jsonContentType, client)
}

// ListClients endpoint
func (cc *ClientController) ListClients(c *gin.Context) {
	clients, err := cc.clientService.ListClients(c.Request.Context(), util.GetActorFromContext(c))
	if err != nil {
		respondReadError(c, err, "Failed to list clients")
		return
	}
	c.Data(http.StatusOK, jsonContentType, clients)
}

// respondAccessError handles the failures shared by every path and reports
// whether it wrote a response.
func respondAccessError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, shop_errors.ErrUnauthenticated), errors.Is(err, shop_errors.ErrAmbiguousActor):
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
	case errors.Is(err, shop_errors.ErrForbidden):
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
	default:
		return false
	}
	return true
}

// Storage and input failures on a write path are client errors.
func respondWriteError(c *gin.Context, err error, message string) {
	if respondAccessError(c, err) {
		return
	}
	switch {
	case errors.Is(err, shop_errors.ErrMalformedPayload), errors.Is(err, shop_errors.ErrInvalidClientData):
		util.RespondWithError(c, http.StatusBadRequest, "Invalid client data", err)
	case errors.Is(err, shop_errors.ErrClientNotFound):
		util.RespondWithError(c, http.StatusBadRequest, "Client not found", err)
	case errors.Is(err, shop_errors.ErrClientConflict):
		util.RespondWithError(c, http.StatusBadRequest, "Client already exists", err)
	case errors.Is(err, shop_errors.ErrInternalServer), errors.Is(err, shop_errors.ErrNoEvaluator):
		util.RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
	default:
		util.RespondWithError(c, http.StatusBadRequest, message, err)
	}
}

func respondReadError(c *gin.Context, err error, message string) {
	if respondAccessError(c, err) {
		return
	}
	if errors.Is(err, shop_errors.ErrClientNotFound) {
		util.RespondWithError(c, http.StatusNotFound, "Client not found", err)
		return
	}
	util.RespondWithError(c, http.StatusInternalServerError, message, err)
}

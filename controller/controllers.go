// api/controller/controllers.go
package controller

import "github.com/dev-mohitbeniwal/shop/api/service"

type Controllers struct {
	Client *ClientController
	Audit  *AuditController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Client: NewClientController(services.Client),
		Audit:  NewAuditController(services.AuditQuery),
	}
}

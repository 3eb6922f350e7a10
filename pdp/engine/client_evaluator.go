package engine

import (
	"strings"

	"github.com/dev-mohitbeniwal/shop/api/model"
)

// ClientEvaluator grants a client full access to its own record and nothing else.
type ClientEvaluator struct{}

func NewClientEvaluator() *ClientEvaluator {
	return &ClientEvaluator{}
}

func (ce *ClientEvaluator) Evaluate(actor model.Actor, target *model.Client) model.PermissionSet {
	client, ok := actor.(*model.ClientActor)
	if !ok || client == nil || target == nil {
		return 0
	}
	if !ce.isSelf(client, target) {
		return 0
	}
	return model.FullPermissionSet()
}

// isSelf matches on id once the target has one. A candidate that has not been
// stored yet has no id, so it is correlated by e-mail instead.
func (ce *ClientEvaluator) isSelf(client *model.ClientActor, target *model.Client) bool {
	if target.ID != "" {
		return client.ID != "" && client.ID == target.ID
	}
	email := strings.TrimSpace(client.Email)
	return email != "" && strings.EqualFold(email, strings.TrimSpace(target.Email))
}

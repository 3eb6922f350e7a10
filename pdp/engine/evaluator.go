package engine

import (
	"fmt"
	"sync"

	shop_errors "github.com/dev-mohitbeniwal/shop/api/errors"
	"github.com/dev-mohitbeniwal/shop/api/model"
	pdp_model "github.com/dev-mohitbeniwal/shop/api/pdp/model"
)

// AccessEvaluator computes the permissions an actor holds over one target.
// Implementations are pure and return the empty set to express "no access".
type AccessEvaluator interface {
	Evaluate(actor model.Actor, target *model.Client) model.PermissionSet
}

// AccessEvaluatorFunc adapts a plain function to AccessEvaluator.
type AccessEvaluatorFunc func(actor model.Actor, target *model.Client) model.PermissionSet

func (f AccessEvaluatorFunc) Evaluate(actor model.Actor, target *model.Client) model.PermissionSet {
	return f(actor, target)
}

// Evaluators routes each actor to the evaluator registered for its kind.
type Evaluators struct {
	mu     sync.RWMutex
	byKind map[model.ActorKind]AccessEvaluator
}

func NewEvaluators(client, employee AccessEvaluator) *Evaluators {
	e := &Evaluators{byKind: make(map[model.ActorKind]AccessEvaluator)}
	e.Register(model.ActorKindClient, client)
	e.Register(model.ActorKindEmployee, employee)
	return e
}

// Register installs or replaces the evaluator for kind.
func (e *Evaluators) Register(kind model.ActorKind, evaluator AccessEvaluator) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.byKind[kind] = evaluator
}

// Evaluate fails only when there is no actor or no evaluator for its kind.
func (e *Evaluators) Evaluate(actor model.Actor, target *model.Client) (model.PermissionSet, error) {
	if actor == nil {
		return 0, shop_errors.ErrUnauthenticated
	}

	e.mu.RLock()
	evaluator, ok := e.byKind[actor.Kind()]
	e.mu.RUnlock()
	if !ok || evaluator == nil {
		return 0, fmt.Errorf("%w: %s", shop_errors.ErrNoEvaluator, actor.Kind())
	}

	if target == nil {
		return 0, nil
	}
	return evaluator.Evaluate(actor, target), nil
}

// Decide evaluates and packages the result for the required permission.
func (e *Evaluators) Decide(actor model.Actor, target *model.Client, required model.PermissionKind) (pdp_model.AccessDecision, error) {
	granted, err := e.Evaluate(actor, target)
	if err != nil {
		return pdp_model.AccessDecision{}, err
	}
	return pdp_model.NewAccessDecision(actor, target, required, granted), nil
}

package model

import (
	"github.com/dev-mohitbeniwal/shop/api/model"
)

const (
	EffectAllow = "allow"
	EffectDeny  = "deny"
)

// AccessDecision is the outcome of gating one operation. It lives for one request.
type AccessDecision struct {
	ActorID   string               `json:"actor_id"`
	ActorKind string               `json:"actor_kind"`
	TargetID  string               `json:"target_id,omitempty"`
	Required  model.PermissionKind `json:"-"`
	Granted   model.PermissionSet  `json:"granted"`
	Effect    string               `json:"effect"`
}

// NewAccessDecision derives the effect from whether granted contains required.
func NewAccessDecision(actor model.Actor, target *model.Client, required model.PermissionKind, granted model.PermissionSet) AccessDecision {
	d := AccessDecision{
		ActorID:   actor.ActorID(),
		ActorKind: actor.Kind().String(),
		Required:  required,
		Granted:   granted,
		Effect:    EffectDeny,
	}
	if target != nil {
		d.TargetID = target.ID
	}
	if granted.Contains(required) {
		d.Effect = EffectAllow
	}
	return d
}

func (d AccessDecision) Allowed() bool {
	return d.Effect == EffectAllow
}

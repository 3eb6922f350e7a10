// Package view renders and parses client records under the field visibility
// of the permission that gated the current operation.
package view

import (
	"github.com/dev-mohitbeniwal/shop/api/model"
)

// Descriptor lists the fields a view treats specially. Everything not listed
// is emitted and accepted as-is.
type Descriptor struct {
	// Emit is the allow-list of fields written on output; nil means all fields.
	Emit []string
	// Secret fields are never written on output.
	Secret []string
	// StaffOnly fields are written and accepted only for employee audiences.
	StaffOnly []string
	// ReadOnly fields are dropped from input.
	ReadOnly []string
	// Decodable reports whether the view accepts input at all.
	Decodable bool
}

var (
	secretFields    = []string{model.FieldPassword}
	staffOnlyFields = []string{model.FieldCreditLimit, model.FieldSegment, model.FieldInternalNotes}
	readOnlyFields  = []string{model.FieldID, model.FieldCreatedAt, model.FieldUpdatedAt}
)

var descriptors = map[model.PermissionKind]Descriptor{
	model.PermissionCreate: {
		Secret:    secretFields,
		StaffOnly: staffOnlyFields,
		ReadOnly:  readOnlyFields,
		Decodable: true,
	},
	model.PermissionRead: {
		Secret:    secretFields,
		StaffOnly: staffOnlyFields,
	},
	model.PermissionUpdate: {
		Secret:    secretFields,
		StaffOnly: staffOnlyFields,
		ReadOnly:  readOnlyFields,
		Decodable: true,
	},
	model.PermissionDelete: {
		Emit: []string{model.FieldID, model.FieldEmail},
	},
}

// DescriptorFor returns the descriptor registered for perm.
func DescriptorFor(perm model.PermissionKind) (Descriptor, bool) {
	d, ok := descriptors[perm]
	return d, ok
}

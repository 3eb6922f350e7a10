package view

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	shop_errors "github.com/dev-mohitbeniwal/shop/api/errors"
	"github.com/dev-mohitbeniwal/shop/api/model"
)

// Serializer encodes and decodes clients for one permission and audience.
// It is a value type with no mutable state.
type Serializer struct {
	perm     model.PermissionKind
	audience model.ActorKind
	desc     Descriptor
}

// For selects the view for the permission that gated the current step.
// The audience only decides whether staff-only fields are visible.
func For(perm model.PermissionKind, audience model.ActorKind) Serializer {
	desc, ok := descriptors[perm]
	if !ok {
		desc = Descriptor{Emit: []string{}}
	}
	return Serializer{perm: perm, audience: audience, desc: desc}
}

func (s Serializer) Permission() model.PermissionKind {
	return s.perm
}

// Marshal renders one client.
func (s Serializer) Marshal(client *model.Client) ([]byte, error) {
	if client == nil {
		return []byte("null"), nil
	}
	data, err := json.Marshal(client)
	if err != nil {
		return nil, fmt.Errorf("marshal client: %w", err)
	}
	return s.shape(data)
}

// MarshalList renders clients as a JSON array in the given order.
func (s Serializer) MarshalList(clients []*model.Client) ([]byte, error) {
	out := []byte("[]")
	for _, client := range clients {
		item, err := s.Marshal(client)
		if err != nil {
			return nil, err
		}
		out, err = sjson.SetRawBytes(out, "-1", item)
		if err != nil {
			return nil, fmt.Errorf("append client: %w", err)
		}
	}
	return out, nil
}

// Unmarshal parses untrusted input into a new client. Fields the audience may
// not set are cleared on the decoded record; unknown, repeated or
// case-variant keys and non-object payloads are rejected.
func (s Serializer) Unmarshal(data []byte) (*model.Client, error) {
	if !s.desc.Decodable {
		return nil, fmt.Errorf("%w: %s view accepts no input", shop_errors.ErrMalformedPayload, s.perm)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: expected a JSON object", shop_errors.ErrMalformedPayload)
	}
	obj := gjson.ParseBytes(data)
	if !obj.IsObject() {
		return nil, fmt.Errorf("%w: expected a JSON object", shop_errors.ErrMalformedPayload)
	}
	if err := checkKeys(obj); err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	var client model.Client
	if err := decoder.Decode(&client); err != nil {
		return nil, fmt.Errorf("%w: %v", shop_errors.ErrMalformedPayload, err)
	}
	s.Preserve(&model.Client{}, &client)
	return &client, nil
}

// checkKeys accepts only exact wire names, each at most once. The decoder
// folds case and keeps the last duplicate, so anything looser would let a key
// land on a field under a name the view never checked.
func checkKeys(obj gjson.Result) error {
	seen := make(map[string]struct{})
	var err error
	obj.ForEach(func(key, _ gjson.Result) bool {
		name := key.String()
		if !lo.Contains(model.ClientFields, name) {
			err = fmt.Errorf("%w: unknown field %q", shop_errors.ErrMalformedPayload, name)
			return false
		}
		if _, dup := seen[name]; dup {
			err = fmt.Errorf("%w: repeated field %q", shop_errors.ErrMalformedPayload, name)
			return false
		}
		seen[name] = struct{}{}
		return true
	})
	return err
}

// Preserve copies every field the audience may not set from original onto
// updated, so a decoded replacement never clears them.
func (s Serializer) Preserve(original, updated *model.Client) {
	for _, field := range s.unsettable() {
		switch field {
		case model.FieldID:
			updated.ID = original.ID
		case model.FieldCreatedAt:
			updated.CreatedAt = original.CreatedAt
		case model.FieldUpdatedAt:
			updated.UpdatedAt = original.UpdatedAt
		case model.FieldCreditLimit:
			updated.CreditLimit = original.CreditLimit
		case model.FieldSegment:
			updated.Segment = original.Segment
		case model.FieldInternalNotes:
			updated.InternalNotes = original.InternalNotes
		}
	}
}

func (s Serializer) shape(data []byte) ([]byte, error) {
	if s.desc.Emit != nil {
		out := []byte("{}")
		for _, field := range s.desc.Emit {
			value := gjson.GetBytes(data, field)
			if !value.Exists() {
				continue
			}
			var err error
			out, err = sjson.SetRawBytes(out, field, []byte(value.Raw))
			if err != nil {
				return nil, fmt.Errorf("shape %s: %w", field, err)
			}
		}
		return out, nil
	}

	var err error
	for _, field := range s.hidden() {
		data, err = sjson.DeleteBytes(data, field)
		if err != nil {
			return nil, fmt.Errorf("hide %s: %w", field, err)
		}
	}
	return data, nil
}

func (s Serializer) staff() bool {
	return s.audience == model.ActorKindEmployee
}

func (s Serializer) hidden() []string {
	hidden := append([]string{}, s.desc.Secret...)
	if !s.staff() {
		hidden = append(hidden, s.desc.StaffOnly...)
	}
	return hidden
}

func (s Serializer) unsettable() []string {
	fields := append([]string{}, s.desc.ReadOnly...)
	if !s.staff() {
		fields = append(fields, s.desc.StaffOnly...)
	}
	return fields
}

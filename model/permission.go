// api/model/permission.go
package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PermissionKind is one of the four operations a decision can grant.
type PermissionKind uint8

const (
	PermissionCreate PermissionKind = iota
	PermissionRead
	PermissionUpdate
	PermissionDelete
)

// PermissionKinds lists every kind in declaration order.
var PermissionKinds = []PermissionKind{PermissionCreate, PermissionRead, PermissionUpdate, PermissionDelete}

func (k PermissionKind) String() string {
	switch k {
	case PermissionCreate:
		return "CREATE"
	case PermissionRead:
		return "READ"
	case PermissionUpdate:
		return "UPDATE"
	case PermissionDelete:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

func (k PermissionKind) valid() bool {
	return k <= PermissionDelete
}

// ParsePermissionKind accepts the kind name in any case.
func ParsePermissionKind(s string) (PermissionKind, error) {
	for _, k := range PermissionKinds {
		if strings.EqualFold(strings.TrimSpace(s), k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown permission kind %q", s)
}

// PermissionSet is a bit set of PermissionKind. The zero value is the empty set.
type PermissionSet uint8

// NewPermissionSet returns a set holding the given kinds.
func NewPermissionSet(kinds ...PermissionKind) PermissionSet {
	var s PermissionSet
	for _, k := range kinds {
		s = s.With(k)
	}
	return s
}

// FullPermissionSet holds every kind.
func FullPermissionSet() PermissionSet {
	return NewPermissionSet(PermissionKinds...)
}

func (s PermissionSet) With(k PermissionKind) PermissionSet {
	if !k.valid() {
		return s
	}
	return s | 1<<k
}

func (s PermissionSet) Contains(k PermissionKind) bool {
	return k.valid() && s&(1<<k) != 0
}

func (s PermissionSet) IsEmpty() bool {
	return s == 0
}

// Kinds returns the members in declaration order.
func (s PermissionSet) Kinds() []PermissionKind {
	kinds := make([]PermissionKind, 0, len(PermissionKinds))
	for _, k := range PermissionKinds {
		if s.Contains(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (s PermissionSet) Strings() []string {
	kinds := s.Kinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.String()
	}
	return out
}

func (s PermissionSet) String() string {
	return "[" + strings.Join(s.Strings(), " ") + "]"
}

func (s PermissionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Strings())
}

func (s *PermissionSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	parsed, err := ParsePermissionSet(names)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParsePermissionSet builds a set from kind names, failing on the first unknown name.
func ParsePermissionSet(names []string) (PermissionSet, error) {
	var s PermissionSet
	for _, name := range names {
		k, err := ParsePermissionKind(name)
		if err != nil {
			return 0, err
		}
		s = s.With(k)
	}
	return s, nil
}

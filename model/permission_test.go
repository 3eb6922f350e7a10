package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionKind_String(t *testing.T) {
	tests := []struct {
		k    PermissionKind
		want string
	}{
		{PermissionCreate, "CREATE"},
		{PermissionRead, "READ"},
		{PermissionUpdate, "UPDATE"},
		{PermissionDelete, "DELETE"},
		{PermissionKind(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.k.String())
		})
	}
}

func TestParsePermissionKind(t *testing.T) {
	k, err := ParsePermissionKind(" update ")
	require.NoError(t, err)
	assert.Equal(t, PermissionUpdate, k)

	_, err = ParsePermissionKind("APPROVE")
	assert.Error(t, err)
}

func TestPermissionSet(t *testing.T) {
	var empty PermissionSet
	assert.True(t, empty.IsEmpty())
	for _, k := range PermissionKinds {
		assert.False(t, empty.Contains(k))
	}

	s := NewPermissionSet(PermissionRead, PermissionDelete, PermissionRead)
	assert.True(t, s.Contains(PermissionRead))
	assert.True(t, s.Contains(PermissionDelete))
	assert.False(t, s.Contains(PermissionCreate))
	assert.False(t, s.Contains(PermissionUpdate))
	assert.Equal(t, []PermissionKind{PermissionRead, PermissionDelete}, s.Kinds())
	assert.Equal(t, "[READ DELETE]", s.String())

	assert.Equal(t, s, s.With(PermissionKind(9)), "out-of-range kinds are ignored")
	assert.False(t, FullPermissionSet().With(PermissionKind(9)).Contains(PermissionKind(9)))
	assert.Len(t, FullPermissionSet().Kinds(), 4)
}

func TestPermissionSet_JSON(t *testing.T) {
	s := NewPermissionSet(PermissionCreate, PermissionUpdate)
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["CREATE","UPDATE"]`, string(data))

	var decoded PermissionSet
	require.NoError(t, json.Unmarshal([]byte(`["read","delete"]`), &decoded))
	assert.Equal(t, NewPermissionSet(PermissionRead, PermissionDelete), decoded)

	assert.Error(t, json.Unmarshal([]byte(`["read","approve"]`), &decoded))
}

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/authorizer/internal/common"
)

func TestLoad_Valid(t *testing.T) {
	raw := `[{"username":"user1","password":"pass1"},{"username":"admin","password":"admin123"}]`

	reg, err := Load(raw)
	require.NoError(t, err)
	require.NotNil(t, reg)

	assert.Equal(t, 2, reg.Len())

	p, ok := reg.Lookup("user1")
	assert.True(t, ok)
	assert.Equal(t, "pass1", p)

	p, ok = reg.Lookup("admin")
	assert.True(t, ok)
	assert.Equal(t, "admin123", p)
}

func TestLoad_NotSet(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t"} {
		reg, err := Load(raw)
		assert.Nil(t, reg)
		assert.ErrorIs(t, err, common.ErrConfigNotSet)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "definitely not json"},
		{name: "not an array", raw: `{"username":"a","password":"1"}`},
		{name: "empty array", raw: `[]`},
		{name: "missing password", raw: `[{"username":"a"}]`},
		{name: "missing username", raw: `[{"password":"1"}]`},
		{name: "non-string password", raw: `[{"username":"a","password":1}]`},
		{name: "non-string username", raw: `[{"username":true,"password":"1"}]`},
		{name: "empty username", raw: `[{"username":"","password":"1"}]`},
		{name: "empty password", raw: `[{"username":"a","password":""}]`},
		{name: "colon in username", raw: `[{"username":"a:b","password":"1"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := Load(tt.raw)
			assert.Nil(t, reg)
			assert.ErrorIs(t, err, common.ErrConfigInvalid)
		})
	}
}

func TestLoad_DuplicateUsernameLastWins(t *testing.T) {
	raw := `[{"username":"a","password":"1"},{"username":"a","password":"2"}]`

	reg, err := Load(raw)
	require.NoError(t, err)

	assert.Equal(t, 1, reg.Len())

	p, ok := reg.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "2", p)
}

func TestNew_LastWriteWins(t *testing.T) {
	reg := New([]UserCredential{
		{Username: "a", Password: "first"},
		{Username: "b", Password: "other"},
		{Username: "a", Password: "second"},
	})

	assert.Equal(t, 2, reg.Len())

	p, ok := reg.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "second", p)
}

func TestLookup_Unknown(t *testing.T) {
	reg := New([]UserCredential{{Username: "a", Password: "1"}})

	p, ok := reg.Lookup("nobody")
	assert.False(t, ok)
	assert.Empty(t, p)
}

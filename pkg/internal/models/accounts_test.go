package models

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

func TestParseAccountRole(t *testing.T) {
	for _, name := range []string{"admin", "librarian", "member"} {
		role, err := ParseAccountRole(name)
		require.NoError(t, err)
		require.Equal(t, AccountRole(name), role)
	}

	_, err := ParseAccountRole("Admin")
	require.Error(t, err)
	_, err = ParseAccountRole("")
	require.Error(t, err)
}

func TestAccountRolePermissions(t *testing.T) {
	cases := []struct {
		role        AccountRole
		moderate    bool
		manageRoles bool
	}{
		{RoleAdmin, true, true},
		{RoleLibrarian, false, false},
		{RoleMember, false, false},
		{AccountRole("root"), false, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			require.Equal(t, tc.moderate, tc.role.CanModerate())
			require.Equal(t, tc.manageRoles, tc.role.CanManageRoles())
		})
	}
}

func TestAccountRepresentations(t *testing.T) {
	json := jsoniter.ConfigCompatibleWithStandardLibrary
	account := Account{
		Username:     "reader",
		Email:        "reader@example.com",
		Role:         RoleLibrarian,
		PasswordHash: "hash",
	}
	account.ID = 7

	var public map[string]any
	raw, err := json.Marshal(account)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &public))
	require.Equal(t, "reader", public["username"])
	require.NotContains(t, public, "email")
	require.NotContains(t, public, "role")
	require.NotContains(t, public, "PasswordHash")

	var profile map[string]any
	raw, err = json.Marshal(account.Profile())
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &profile))
	require.Equal(t, "reader", profile["username"])
	require.Equal(t, "reader@example.com", profile["email"])
	require.Equal(t, "librarian", profile["role"])
	require.EqualValues(t, 7, profile["id"])
}

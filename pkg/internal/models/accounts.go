package models

import (
	"fmt"

	"gorm.io/datatypes"
)

type AccountRole string

const (
	RoleAdmin     = AccountRole("admin")
	RoleLibrarian = AccountRole("librarian")
	RoleMember    = AccountRole("member")
)

// ParseAccountRole maps the external name of a role to the enumerated value.
func ParseAccountRole(in string) (AccountRole, error) {
	switch AccountRole(in) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleLibrarian:
		return RoleLibrarian, nil
	case RoleMember:
		return RoleMember, nil
	default:
		return "", fmt.Errorf("unknown account role %q", in)
	}
}

// CanModerate reports whether the role may remove content it does not own.
func (v AccountRole) CanModerate() bool {
	switch v {
	case RoleAdmin:
		return true
	case RoleLibrarian, RoleMember:
		return false
	default:
		return false
	}
}

// CanManageRoles reports whether the role may change the role of other accounts.
func (v AccountRole) CanManageRoles() bool {
	switch v {
	case RoleAdmin:
		return true
	case RoleLibrarian, RoleMember:
		return false
	default:
		return false
	}
}

type Account struct {
	BaseModel

	Username       string            `json:"username" gorm:"uniqueIndex"`
	Email          string            `json:"-" gorm:"uniqueIndex"`
	Bio            string            `json:"bio"`
	ProfilePicture string            `json:"profile_picture"`
	Links          datatypes.JSONMap `json:"links"`
	Role           AccountRole       `json:"-" gorm:"default:member"`
	PasswordHash   string            `json:"-"`

	Posts  []Post      `json:"-" gorm:"foreignKey:AuthorID"`
	Tokens []AuthToken `json:"-"`

	Metric AccountMetric `json:"metric" gorm:"-"`
}

// Profile is the representation of an account shown to itself and to admins.
// The plain Account encodes only its public fields.
func (v Account) Profile() AccountProfile {
	return AccountProfile{Account: v, Email: v.Email, Role: v.Role}
}

type AccountProfile struct {
	Account

	Email string      `json:"email"`
	Role  AccountRole `json:"role"`
}

type AccountMetric struct {
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
	PostCount      int64 `json:"post_count"`
}

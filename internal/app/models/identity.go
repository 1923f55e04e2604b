package models

// Role defines the access level of an authenticated caller
type Role string

const (
	RoleUser       Role = "user"       // self-service only
	RoleSuperAdmin Role = "superadmin" // scoped to exactly one university
	RoleOwner      Role = "owner"      // unrestricted cross-university access
)

// IsValid reports whether the role belongs to the closed role set.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleSuperAdmin, RoleOwner:
		return true
	}
	return false
}

// IdentityKind discriminates which table an identity was resolved from
type IdentityKind string

const (
	IdentityAdmin IdentityKind = "admin"
	IdentityUser  IdentityKind = "user"
)

// Identity is the tagged union of Admin and User used by the
// authentication and authorization layers. It is resolved by two
// explicit typed lookups (admins first, then users), never by
// duck-typed fallthrough.
type Identity struct {
	Kind         IdentityKind
	ID           int64
	Email        string
	Password     string // hashed
	Role         Role
	UniversityID *int64 // set for superadmins; nil otherwise
	IsActive     bool
}

// AdminIdentity builds an Identity from an admin record.
func AdminIdentity(a *Admin) Identity {
	return Identity{
		Kind:         IdentityAdmin,
		ID:           a.ID,
		Email:        a.Email,
		Password:     a.Password,
		Role:         a.Role,
		UniversityID: a.UniversityID,
		IsActive:     true,
	}
}

// UserIdentity builds an Identity from a user record.
func UserIdentity(u *User) Identity {
	return Identity{
		Kind:         IdentityUser,
		ID:           u.ID,
		Email:        u.Email,
		Password:     u.Password,
		Role:         RoleUser,
		UniversityID: u.UniversityID,
		IsActive:     u.IsActive,
	}
}

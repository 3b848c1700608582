package domain

type Role string

const (
	RoleGuest Role = "guest" // unauthenticated caller
	RoleUser  Role = "user"
	RoleHost  Role = "host"
	RoleAdmin Role = "admin"
)

// Identity is who is making the call. Session issuance lives upstream; the
// API trusts the identity headers injected by the auth proxy. A zero UserID
// with RoleGuest is an anonymous caller.
type Identity struct {
	UserID int64
	Role   Role
}

func (id Identity) Anonymous() bool { return id.UserID == 0 }
func (id Identity) IsAdmin() bool   { return id.Role == RoleAdmin }

// CanManage reports whether the caller may mutate a resource owned by
// ownerID. Exactly the owner or an admin.
func (id Identity) CanManage(ownerID int64) bool {
	return id.IsAdmin() || (!id.Anonymous() && id.UserID == ownerID)
}

// System is the identity used by in-process maintenance jobs.
func System() Identity { return Identity{Role: RoleAdmin} }

type User struct {
	ID        int64
	Name      *string
	Email     *string
	Role      Role
	Phone     *string
	Bio       *string
	AvatarURL *string
}

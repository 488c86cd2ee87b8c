package domain

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID string
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanActFor reports whether the actor may write data owned by userID.
func (a Actor) CanActFor(userID string) bool {
	return a.IsAdmin() || (a.UserID != "" && a.UserID == userID)
}

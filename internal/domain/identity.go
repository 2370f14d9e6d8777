package domain

// Roles returned by the auth backend.
const (
	RoleClient  = "CLIENT"
	RoleManager = "GESTIONNAIRE"
	RoleAdmin   = "ADMIN"
)

// Identity is the authenticated user context that gates cart access.
// Equality is by UserID; two identities with the same UserID share a cart.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// Credentials is the payload returned by a successful login.
type Credentials struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID string `json:"userId"`
}

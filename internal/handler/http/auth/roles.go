package auth

// Roles carried in JWT claims. Only admin may access protected endpoints;
// viewer exists for token introspection and future read-only access.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

package constants

// User roles
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

package domain

// UserRole distinguishes the storefront personas.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleVendor  UserRole = "vendor"
	RoleAdmin   UserRole = "admin"
)

// User is the simulated storefront account. Authentication is a named
// non-goal; the login endpoint hands out a fixed demo user.
type User struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Role          UserRole `json:"role"`
	Avatar        string   `json:"avatar,omitempty"`
	WalletBalance int      `json:"walletBalance"`
}

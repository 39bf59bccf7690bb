package service

import "digisure/internal/domain"

// AuthService hands out the fixed demo account. Real authentication
// is a non-goal of this storefront; the login flow only varies the
// role it echoes back.
type AuthService interface {
	Login(role string) domain.User
}

type authService struct{}

// NewAuthService creates a new instance of AuthService
func NewAuthService() AuthService {
	return &authService{}
}

func (s *authService) Login(role string) domain.User {
	userRole := domain.RoleStudent
	switch domain.UserRole(role) {
	case domain.RoleVendor:
		userRole = domain.RoleVendor
	case domain.RoleAdmin:
		userRole = domain.RoleAdmin
	}

	return domain.User{
		ID:            "u1",
		Name:          "Aditi Sharma",
		Email:         "aditi@example.com",
		Role:          userRole,
		Avatar:        "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&w=200&q=80",
		WalletBalance: 0,
	}
}

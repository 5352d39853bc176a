package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	// Admin permissions
	PermissionReadAdmin  = "admin:read"
	PermissionWriteAdmin = "admin:write"

	// Consumer permissions
	PermissionPaymentWrite = "payment:write"
	PermissionBoxRead      = "box:read"
	PermissionBoxWrite     = "box:write"
	PermissionCardWrite    = "card:write"

	// Merchant permissions
	PermissionPlanWrite       = "plan:write"
	PermissionMerchantRead    = "merchant:read"
	PermissionTransactionRead = "transaction:read"
)

type UserClaims struct {
	jwt.RegisteredClaims
	UserID      string   `json:"user_id"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// HasPermission checks if the claims include a specific permission
func (c *UserClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case "admin":
		return []string{
			PermissionReadAdmin,
			PermissionWriteAdmin,
			PermissionPaymentWrite,
			PermissionBoxRead,
			PermissionBoxWrite,
			PermissionCardWrite,
			PermissionPlanWrite,
			PermissionMerchantRead,
			PermissionTransactionRead,
		}
	case "merchant", "nonprofit":
		return []string{
			PermissionPlanWrite,
			PermissionMerchantRead,
			PermissionTransactionRead,
		}
	case "consumer":
		return []string{
			PermissionPaymentWrite,
			PermissionBoxRead,
			PermissionBoxWrite,
			PermissionCardWrite,
		}
	default:
		return []string{}
	}
}

package models

import "github.com/golang-jwt/jwt/v5"

const RoleAdmin = "admin"

// Admin permissions
const (
	PermissionFeeSettingsRead  = "fee-settings:read"
	PermissionFeeSettingsWrite = "fee-settings:write"
	PermissionProductRead      = "product:read"
	PermissionProductWrite     = "product:write"
)

type AdminClaims struct {
	jwt.RegisteredClaims
	Username    string   `json:"username"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// HasPermission checks if the claims include a specific permission
func (c *AdminClaims) HasPermission(permission string) bool {
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
	case RoleAdmin:
		return []string{
			PermissionFeeSettingsRead,
			PermissionFeeSettingsWrite,
			PermissionProductRead,
			PermissionProductWrite,
		}
	default:
		return []string{}
	}
}

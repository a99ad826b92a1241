package auth

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents the JWT claims presented by credit risk API callers.
type Claims struct {
	jwt.RegisteredClaims
	ClientID uuid.UUID `json:"client_id"`
	Roles    []string  `json:"roles"`
}

// HasRole checks if the claims include the specified role.
func (c Claims) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}

// HasAnyRole reports whether the claims carry at least one of roles.
func (c Claims) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if c.HasRole(r) {
			return true
		}
	}
	return false
}

// Role constants
const (
	RoleAdmin         = "admin"
	RoleCreditAnalyst = "credit_analyst"
	RoleAPIClient     = "api_client"
)

// ScoringRoles may request predictions.
var ScoringRoles = []string{RoleAdmin, RoleCreditAnalyst, RoleAPIClient}

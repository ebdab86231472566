// Package service implements the business operations behind the HTTP API.
package service

import "github.com/d9705996/kysai/internal/auth"

// Author attributes a created row to a user and organization. The zero value
// is an anonymous request.
type Author struct {
	UserID         *uint
	OrganizationID *uint
}

// AuthorFromClaims returns the Author carried by claims, or the anonymous
// Author when claims is nil.
func AuthorFromClaims(claims *auth.Claims) Author {
	if claims == nil {
		return Author{}
	}
	uid := claims.UserID
	return Author{UserID: &uid, OrganizationID: claims.OrganizationID}
}

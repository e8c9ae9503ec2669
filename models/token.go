package models

import "github.com/golang-jwt/jwt/v5"

// Token carries a parsed or freshly issued admin JWT. It embeds
// jwt.RegisteredClaims so it can be used directly with ParseWithClaims.
type Token struct {
	jwt.RegisteredClaims

	Token        *jwt.Token `json:"-"`
	SignedString string     `json:"-"`

	// Login is the admin login extracted from the subject claim.
	Login string `json:"-"`
}

package utils

import (
	"github.com/golang-jwt/jwt"
)

// IsJWTShaped reports whether the string is structurally a JWT. The remote
// service key is never verified locally, only shape-checked before any
// network call is attempted.
func IsJWTShaped(token string) bool {
	parser := jwt.Parser{}
	_, _, err := parser.ParseUnverified(token, jwt.MapClaims{})
	return err == nil
}

// ExtractSubject pulls the sub claim out of an access token without
// verifying the signature. Verification is the remote auth service's job.
func ExtractSubject(token string) string {
	parser := jwt.Parser{}
	parsed, _, err := parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return ""
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	sub, _ := claims["sub"].(string)
	return sub
}

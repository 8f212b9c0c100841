package jwt

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims включает стандартные и наш флаг администратора.
// Subject holds the numeric user id; name and email are optional profile hints.
type Claims struct {
	jwt.RegisteredClaims
	IsAdmin bool   `json:"is_admin"`
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
}

// UserID parses the subject as a positive user id.
func (c *Claims) UserID() (int64, bool) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

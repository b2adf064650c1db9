//go:build unit

package api_test

import (
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAuth stands in for the auth middleware: requests with an Authorization header get a random user.
func fakeAuth(role user.Role) gin.HandlerFunc {
	return fakeAuthAs(uuid.New(), role)
}

func fakeAuthAs(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", userID)
			c.Set("user_role", role)
		}
		c.Next()
	}
}

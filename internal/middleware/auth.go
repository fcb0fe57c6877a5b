package middleware

import (
	"net/http"
	"repboard/internal/ledger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const IdentityKey = "identity"

// LoadIdentity retrieves the caller identity from the session and sets it
// on the context. Authentication itself happens upstream at the gateway;
// here the session is only the carrier of an already-verified identity.
func LoadIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		raw := session.Get("identity")

		if raw != nil {
			if id, ok := raw.(uint64); ok && id != 0 {
				c.Set(IdentityKey, ledger.Identity(id))
			}
		}
		c.Next()
	}
}

// IdentityRequired rejects calls that have no established identity.
func IdentityRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(IdentityKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "identity required"})
			return
		}
		c.Next()
	}
}

// Caller returns the identity set by LoadIdentity, zero for anonymous calls.
func Caller(c *gin.Context) ledger.Identity {
	if v, exists := c.Get(IdentityKey); exists {
		return v.(ledger.Identity)
	}
	return 0
}

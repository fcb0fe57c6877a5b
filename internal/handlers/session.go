package handlers

import (
	"log"
	"net/http"
	"os"
	"repboard/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionHandler sits at the trust boundary: the deployment's fronting auth
// layer presents the shared gateway key once per caller and binds the
// verified identity to a cookie session. The core never sees any of this.
type SessionHandler struct {
	keyHash string
}

func NewSessionHandler() *SessionHandler {
	hash := os.Getenv("GATEWAY_KEY_HASH")
	if hash == "" {
		log.Println("GATEWAY_KEY_HASH not set, accepting any gateway key (dev mode)")
	}
	return &SessionHandler{keyHash: hash}
}

// Establish 绑定调用方身份到会话
func (h *SessionHandler) Establish(c *gin.Context) {
	identity := utils.StringToUint64(c.PostForm("identity"))
	if identity == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identity must be a non-zero integer"})
		return
	}

	if h.keyHash != "" && !utils.CheckGatewayKey(c.PostForm("gateway_key"), h.keyHash) {
		c.JSON(http.StatusForbidden, gin.H{"error": "bad gateway key"})
		return
	}

	session := sessions.Default(c)
	session.Set("identity", identity)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"identity": identity})
}

// Destroy 清除会话
func (h *SessionHandler) Destroy(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}
	c.Status(http.StatusNoContent)
}

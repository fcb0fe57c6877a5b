package handlers

import (
	"errors"
	"net/http"
	"repboard/internal/ledger"

	"github.com/gin-gonic/gin"
)

// Fail maps a ledger error kind onto an HTTP status so API consumers can
// branch the same way in-process callers do with errors.Is.
func Fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ledger.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, ledger.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ledger.ErrInactive):
		status = http.StatusGone
	case errors.Is(err, ledger.ErrStateConflict):
		status = http.StatusConflict
	case errors.Is(err, ledger.ErrUnauthorized):
		status = http.StatusForbidden
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// parseKind validates the :type route parameter.
func parseKind(c *gin.Context) (ledger.ItemKind, bool) {
	switch c.Param("type") {
	case "post":
		return ledger.KindPost, true
	case "comment":
		return ledger.KindComment, true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "item type must be post or comment"})
		return "", false
	}
}

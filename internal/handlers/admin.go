package handlers

import (
	"net/http"
	"repboard/internal/ledger"
	"repboard/internal/middleware"
	"repboard/internal/services"
	"repboard/internal/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	ledger *ledger.Ledger
}

func NewAdminHandler(l *ledger.Ledger) *AdminHandler {
	return &AdminHandler{ledger: l}
}

// SetModerator 授予或撤销版主（仅限 owner）
func (h *AdminHandler) SetModerator(c *gin.Context) {
	caller := middleware.Caller(c)
	target := ledger.Identity(utils.StringToUint64(c.Param("id")))
	grant := c.PostForm("grant") != "false"

	if err := h.ledger.SetModerator(caller, target, grant); err != nil {
		Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Remove 管理员删除内容（不动声望，原因会随动作记录落库）
func (h *AdminHandler) Remove(c *gin.Context) {
	caller := middleware.Caller(c)
	kind, ok := parseKind(c)
	if !ok {
		return
	}

	err := h.ledger.AdminRemove(caller, kind, utils.StringToUint64(c.Param("id")), c.PostForm("reason"))
	if err != nil {
		Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Actions 动作流水分页查询（版主可见）
func (h *AdminHandler) Actions(c *gin.Context) {
	caller := middleware.Caller(c)
	stats, err := h.ledger.Stats(caller)
	if err != nil || !stats.IsModerator {
		c.JSON(http.StatusForbidden, gin.H{"error": "moderator role required"})
		return
	}

	page := utils.StringToInt(c.Query("page"))
	perPage := utils.StringToInt(c.Query("per_page"))
	logs, total, err := services.RecentActions(page, perPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load action log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"actions": logs, "total": total})
}

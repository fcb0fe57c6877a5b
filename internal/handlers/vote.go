package handlers

import (
	"fmt"
	"net/http"
	"repboard/internal/ledger"
	"repboard/internal/middleware"
	"repboard/internal/utils"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	ledger *ledger.Ledger
}

func NewVoteHandler(l *ledger.Ledger) *VoteHandler {
	return &VoteHandler{ledger: l}
}

// Vote handles upvote logic
func (h *VoteHandler) Vote(c *gin.Context) {
	h.cast(c, true)
}

// Downvote 处理点踩逻辑
func (h *VoteHandler) Downvote(c *gin.Context) {
	h.cast(c, false)
}

func (h *VoteHandler) cast(c *gin.Context, upvote bool) {
	caller := middleware.Caller(c)
	kind, ok := parseKind(c)
	if !ok {
		return
	}

	votes, err := h.ledger.Vote(caller, kind, utils.StringToUint64(c.Param("id")), upvote)
	if err != nil {
		Fail(c, err)
		return
	}
	// 返回变更后的净票数
	c.String(http.StatusOK, fmt.Sprintf("%d", votes))
}

// Revoke 撤销投票（不可逆，撤销后该条目不能再投）
func (h *VoteHandler) Revoke(c *gin.Context) {
	caller := middleware.Caller(c)
	kind, ok := parseKind(c)
	if !ok {
		return
	}

	votes, err := h.ledger.Revoke(caller, kind, utils.StringToUint64(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	c.String(http.StatusOK, fmt.Sprintf("%d", votes))
}

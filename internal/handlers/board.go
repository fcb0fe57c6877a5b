package handlers

import (
	"net/http"
	"repboard/internal/ledger"
	"repboard/internal/middleware"
	"repboard/internal/utils"

	"github.com/gin-gonic/gin"
)

// BoardHandler covers post/comment creation and self-service removal.
type BoardHandler struct {
	ledger *ledger.Ledger
}

func NewBoardHandler(l *ledger.Ledger) *BoardHandler {
	return &BoardHandler{ledger: l}
}

// CreatePost 发布帖子
func (h *BoardHandler) CreatePost(c *gin.Context) {
	caller := middleware.Caller(c)

	id, err := h.ledger.CreatePost(caller, c.PostForm("content"))
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// CreateComment 发表评论
func (h *BoardHandler) CreateComment(c *gin.Context) {
	caller := middleware.Caller(c)
	postID := utils.StringToUint64(c.Param("id"))

	id, err := h.ledger.CreateComment(caller, postID, c.PostForm("content"))
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "post_id": postID})
}

// Remove 作者自删（声望回退，墓碑不可逆）
func (h *BoardHandler) Remove(c *gin.Context) {
	caller := middleware.Caller(c)
	kind, ok := parseKind(c)
	if !ok {
		return
	}

	if err := h.ledger.Remove(caller, kind, utils.StringToUint64(c.Param("id"))); err != nil {
		Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

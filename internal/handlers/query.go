package handlers

import (
	"fmt"
	"net/http"
	"repboard/internal/ledger"
	"repboard/internal/middleware"
	"repboard/internal/utils"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 30

// QueryHandler serves the read-only projections. Responses are cached in a
// small LRU keyed by (params, viewer, ledger version); the version moves on
// every successful mutation, so a cache hit can never be stale.
type QueryHandler struct {
	ledger *ledger.Ledger
	cache  *utils.Cache
}

func NewQueryHandler(l *ledger.Ledger) *QueryHandler {
	cache, err := utils.NewCache(500)
	if err != nil {
		// lru.New only fails on a non-positive size
		panic(err)
	}
	return &QueryHandler{ledger: l, cache: cache}
}

// Feed 分页浏览帖子流
func (h *QueryHandler) Feed(c *gin.Context) {
	viewer := middleware.Caller(c)

	start := utils.StringToUint64(c.Query("start"))
	if start == 0 && c.Query("start") == "" {
		start = 1
	}
	limit := utils.StringToInt(c.Query("limit"))
	if limit == 0 {
		limit = defaultPageSize
	}

	cacheKey := fmt.Sprintf("feed:%d:%d:%d:v%d", start, limit, viewer, h.ledger.Version())
	if cached := h.cache.Get(cacheKey); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	views, err := h.ledger.Feed(start, limit, viewer)
	if err != nil {
		Fail(c, err)
		return
	}

	body := gin.H{"posts": views, "start": start, "limit": limit}
	h.cache.Set(cacheKey, body, time.Minute)
	c.JSON(http.StatusOK, body)
}

// PostDetails 帖子详情与一页评论
func (h *QueryHandler) PostDetails(c *gin.Context) {
	viewer := middleware.Caller(c)
	postID := utils.StringToUint64(c.Param("id"))

	commentStart := utils.StringToInt(c.Query("comment_start"))
	commentLimit := utils.StringToInt(c.Query("comment_limit"))
	if commentLimit == 0 {
		commentLimit = defaultPageSize
	}

	cacheKey := fmt.Sprintf("post:%d:%d:%d:%d:v%d", postID, commentStart, commentLimit, viewer, h.ledger.Version())
	if cached := h.cache.Get(cacheKey); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	view, comments, hasMore, err := h.ledger.PostDetails(postID, commentStart, commentLimit, viewer)
	if err != nil {
		Fail(c, err)
		return
	}

	body := gin.H{"post": view, "comments": comments, "has_more": hasMore}
	h.cache.Set(cacheKey, body, time.Minute)
	c.JSON(http.StatusOK, body)
}

// UserStats 用户声望与计数
func (h *QueryHandler) UserStats(c *gin.Context) {
	stats, err := h.ledger.Stats(ledger.Identity(utils.StringToUint64(c.Param("id"))))
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Totals 帖子/评论计数器与变更版本号
func (h *QueryHandler) Totals(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledger.TotalCounts())
}

package router

import (
	"repboard/internal/handlers"
	"repboard/internal/ledger"
	"repboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, l *ledger.Ledger) {
	// Handlers
	sessionHandler := handlers.NewSessionHandler()
	boardHandler := handlers.NewBoardHandler(l)
	voteHandler := handlers.NewVoteHandler(l)
	queryHandler := handlers.NewQueryHandler(l)
	adminHandler := handlers.NewAdminHandler(l)

	// 公共只读路由 (Public Routes)
	r.GET("/feed", queryHandler.Feed)                 // 帖子流分页
	r.GET("/posts/:id", queryHandler.PostDetails)     // 帖子详情与评论分页
	r.GET("/users/:id/stats", queryHandler.UserStats) // 用户声望与计数
	r.GET("/totals", queryHandler.Totals)             // 计数器

	// 会话路由：信任边界，上游网关在这里绑定已认证身份
	r.POST("/session", sessionHandler.Establish)
	r.DELETE("/session", sessionHandler.Destroy)

	// 受保护路由 (Protected Routes)
	authorized := r.Group("/")
	authorized.Use(middleware.IdentityRequired())
	{
		authorized.POST("/posts", boardHandler.CreatePost)                 // 发布帖子
		authorized.POST("/posts/:id/comments", boardHandler.CreateComment) // 发表评论
		authorized.POST("/vote/:type/:id", voteHandler.Vote)               // 点赞
		authorized.POST("/vote/:type/:id/down", voteHandler.Downvote)      // 点踩
		authorized.POST("/vote/:type/:id/revoke", voteHandler.Revoke)      // 撤销投票
		authorized.DELETE("/content/:type/:id", boardHandler.Remove)       // 作者自删
	}

	// 管理路由 (Admin Routes)
	admin := r.Group("/admin")
	admin.Use(middleware.IdentityRequired())
	{
		admin.POST("/moderators/:id", adminHandler.SetModerator) // 授予/撤销版主
		admin.DELETE("/:type/:id", adminHandler.Remove)          // 管理员删除内容
		admin.GET("/actions", adminHandler.Actions)              // 动作流水
	}
}

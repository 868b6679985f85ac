package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"member-query/internal/api/handler"
	"member-query/internal/api/middleware"
	"member-query/internal/pkg/config"
	"member-query/internal/service"
)

// Setup 设置路由
func Setup(cfg *config.Config, memberService service.MemberService, teamService service.TeamService) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger API 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	memberHandler := handler.NewMemberHandler(memberService)
	teamHandler := handler.NewTeamHandler(teamService)

	v1 := r.Group("/api/v1")
	{
		// 会员查询
		groupMember := v1.Group("/member")
		groupMembers := v1.Group("/members")
		{
			groupMembers.GET("/search", memberHandler.Search)
			groupMembers.GET("/search/builder", memberHandler.SearchByBuilder)
			groupMembers.GET("/page", memberHandler.Page) // mode=simple|complex|count
			groupMembers.GET("/sorted", memberHandler.ListSorted)

			groupMember.POST("", memberHandler.Create)
			groupMember.GET("", memberHandler.GetByID)
			groupMember.PUT("", memberHandler.Update)
			groupMember.DELETE("/:id", memberHandler.Delete)
		}

		// 批量操作，开启认证时需要Token
		bulk := groupMembers.Group("/bulk")
		if cfg.Auth.Enabled {
			bulk.Use(middleware.AuthMiddleware(&cfg.Auth.JWT))
		}
		{
			bulk.POST("/username", memberHandler.BulkUpdateUsername)
			bulk.POST("/age", memberHandler.BulkIncrementAge)
			bulk.POST("/delete", memberHandler.BulkDelete)
		}

		// 团队管理
		groupTeam := v1.Group("/team")
		groupTeams := v1.Group("/teams")
		{
			groupTeam.POST("", teamHandler.Create)
			groupTeam.GET("", teamHandler.GetByID)
			groupTeams.GET("", teamHandler.List)
			groupTeam.PUT("", teamHandler.Update)
			groupTeam.DELETE("/:id", teamHandler.Delete)
		}
	}

	return r
}

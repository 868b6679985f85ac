package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"member-query/internal/pkg/config"
	"member-query/internal/pkg/jwt"
	"member-query/pkg/constants"
	"member-query/pkg/utils"
)

// AuthMiddleware JWT认证中间件
func AuthMiddleware(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 获取Authorization header
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorWithCode(c, 401, "缺少Authorization Header")
			c.Abort()
			return
		}

		// 检查Bearer前缀
		if !strings.HasPrefix(authHeader, constants.HeaderBearerPrefix) {
			utils.ErrorWithCode(c, 401, "Authorization格式错误")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, constants.HeaderBearerPrefix)

		claims, err := jwt.ValidateToken(cfg, token)
		if err != nil {
			utils.Error(c, err)
			c.Abort()
			return
		}

		c.Set(constants.JWTContextKey, claims.Subject)
		c.Next()
	}
}

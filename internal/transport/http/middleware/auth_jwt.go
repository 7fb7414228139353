package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"berg-stat-api/internal/core/auth"
	"berg-stat-api/internal/domain"
	resp "berg-stat-api/internal/transport/http/response"
)

const principalKey = "principal"

// AuthJWT 请求网关：取令牌 → 验签/验期 → 查用户 → 封禁检查 → 挂身份。
// 每一步失败都在 handler 之前短路。isAdmin 不信任令牌里的声明，
// 一律以本次查到的用户行为准，封禁与降权下一次请求即生效。
func AuthJWT(j *auth.JWTer, users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.Forbidden(c, "Token is not provided.")
			return
		}
		claims, err := j.Parse(strings.TrimSpace(strings.TrimPrefix(ah, "Bearer ")))
		if err != nil {
			resp.Forbidden(c, "Provided token is invalid.")
			return
		}
		u, err := users.FindByID(claims.UID)
		if err != nil {
			_ = c.Error(err)
			resp.ServerError(c)
			return
		}
		if u == nil {
			// 已注销账号的存活令牌视为无效
			resp.Forbidden(c, "Provided token is invalid")
			return
		}
		if u.IsBanned {
			resp.Forbidden(c, "You are banned")
			return
		}
		c.Set(principalKey, auth.Principal{ID: u.ID, IsAdmin: u.IsAdmin})
		c.Next()
	}
}

// AdminOnly 管理端追加的角色检查，通过时留一条审计日志
func AdminOnly(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := CurrentPrincipal(c)
		if !ok || !p.IsAdmin {
			resp.Forbidden(c, "You have no access to this resource")
			return
		}
		l.Info("request by admin", zap.String("admin_id", p.ID))
		c.Next()
	}
}

func CurrentPrincipal(c *gin.Context) (auth.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}

package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"berg-stat-api/internal/core/auth"
	"berg-stat-api/internal/core/cache"
	"berg-stat-api/internal/core/server"
	"berg-stat-api/internal/repo"
	"berg-stat-api/internal/service"
	"berg-stat-api/internal/transport/http/handler"
	mdw "berg-stat-api/internal/transport/http/middleware"
)

// NewAdminEngine 管理端引擎：/admin/v1，除登录外统一走网关 + 角色检查
func NewAdminEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer, c *cache.Cache) *gin.Engine {
	r := server.NewRouter(l)
	r.Use(mdw.RequestID(), mdw.Metrics())

	r.GET("/health", func(gc *gin.Context) { gc.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	userRepo := repo.NewUserRepo(db)
	placeRepo := repo.NewPlaceRepo(db)
	tagRepo := repo.NewTagRepo(db)
	opinionRepo := repo.NewOpinionRepo(db)

	userSvc := service.NewUserService(userRepo, jwter)
	placeSvc := service.NewPlaceService(placeRepo, c)
	tagSvc := service.NewTagService(tagRepo, c)
	opinionSvc := service.NewOpinionService(opinionRepo, placeRepo, userRepo, tagRepo)

	adminH := handler.NewAdminHandler(userSvc, opinionSvc, placeSvc, tagSvc)

	admin := r.Group("/admin/v1")
	admin.POST("/login", adminH.Login)

	guarded := admin.Group("", mdw.AuthJWT(jwter, userRepo), mdw.AdminOnly(l))

	guarded.GET("/users", adminH.ListUsers)
	guarded.GET("/users/blocked", adminH.ListBlockedUsers)
	guarded.GET("/users/:id", adminH.GetUser)
	guarded.DELETE("/users/:id", adminH.DeleteUser)
	guarded.PUT("/users/:id/block", adminH.BlockUser)
	guarded.PUT("/users/:id/unblock", adminH.UnblockUser)

	guarded.GET("/opinions", adminH.ListOpinions)
	guarded.GET("/opinions/blocked", adminH.ListBlockedOpinions)
	guarded.PUT("/opinions/:id/block", adminH.BlockOpinion)
	guarded.PUT("/opinions/:id/unblock", adminH.UnblockOpinion)
	guarded.DELETE("/opinions/:id", adminH.DeleteOpinion)

	guarded.POST("/places", adminH.AddPlace)
	guarded.PUT("/places/:oldName", adminH.UpdatePlace)
	guarded.DELETE("/places/:placeName", adminH.DeletePlace)

	guarded.POST("/tags", adminH.AddTag)
	guarded.GET("/tags", adminH.ListTags)
	guarded.PUT("/tags/:tagName/activate", adminH.ActivateTag)
	guarded.PUT("/tags/:tagName/deactivate", adminH.DeactivateTag)
	guarded.DELETE("/tags/:tagName", adminH.DeleteTag)

	return r
}

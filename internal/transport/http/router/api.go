package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"berg-stat-api/internal/core/auth"
	"berg-stat-api/internal/core/cache"
	"berg-stat-api/internal/repo"
	"berg-stat-api/internal/service"
	"berg-stat-api/internal/transport/http/handler"
	mdw "berg-stat-api/internal/transport/http/middleware"
)

// NewAPIEngine 用户端引擎：/api/v1
func NewAPIEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer, c *cache.Cache) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(l),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

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

	userH := handler.NewUserHandler(userSvc)
	placeH := handler.NewPlaceHandler(placeSvc)
	tagH := handler.NewTagHandler(tagSvc)
	opinionH := handler.NewOpinionHandler(opinionSvc)

	api := r.Group("/api/v1")

	// 公共入口
	api.POST("/users", userH.Register)
	api.POST("/users/login", userH.Login)

	// 网关之后的路由
	authed := api.Group("", mdw.AuthJWT(jwter, userRepo))

	authed.GET("/users/me", userH.Me)
	authed.DELETE("/users/me", userH.DeleteMe)
	authed.PUT("/users/me/password", userH.ChangePassword)

	authed.GET("/places", placeH.GetAll)
	authed.GET("/places/:placeName", placeH.Get)

	authed.GET("/tags/active", tagH.GetActive)

	authed.GET("/opinions/report", opinionH.ReportReasons)
	authed.POST("/opinions/:placeName", opinionH.Add)
	authed.GET("/opinions/:placeName", opinionH.ListForPlace)
	authed.GET("/opinions/:placeName/:opinionId", opinionH.Get)
	authed.PUT("/opinions/:placeName/:opinionId", opinionH.Update)
	authed.DELETE("/opinions/:placeName/:opinionId", opinionH.Delete)
	authed.PUT("/opinions/:placeName/:opinionId/likes", opinionH.Like)
	authed.PUT("/opinions/:placeName/:opinionId/unlikes", opinionH.Unlike)
	authed.PUT("/opinions/:placeName/:opinionId/report", opinionH.Report)

	return r
}

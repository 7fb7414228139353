package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"berg-stat-api/internal/core/auth"
	"berg-stat-api/internal/domain"
	"berg-stat-api/internal/repo"
	"berg-stat-api/pkg/utils"
)

func newGateFixture(t *testing.T) (*gorm.DB, *auth.JWTer, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	j := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "berg-stat-test", TTL: time.Hour}

	r := gin.New()
	authed := r.Group("/", AuthJWT(j, repo.NewUserRepo(db)))
	authed.GET("/me", func(c *gin.Context) {
		p, _ := CurrentPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"id": p.ID, "isAdmin": p.IsAdmin})
	})
	admin := r.Group("/admin", AuthJWT(j, repo.NewUserRepo(db)), AdminOnly(zap.NewNop()))
	admin.GET("/users", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return db, j, r
}

func createUser(t *testing.T, db *gorm.DB, username string, isAdmin, isBanned bool) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: utils.HashPassword("secret"),
		IsAdmin:      isAdmin,
		IsBanned:     isBanned,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGateMissingToken(t *testing.T) {
	_, _, r := newGateFixture(t)

	w := doGet(r, "/me", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"Token is not provided."}`, w.Body.String())

	// 非 Bearer 格式同样拒绝
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Basic abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGateInvalidToken(t *testing.T) {
	_, _, r := newGateFixture(t)

	w := doGet(r, "/me", "not-a-token")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"Provided token is invalid."}`, w.Body.String())
}

func TestGateDeletedUser(t *testing.T) {
	db, j, r := newGateFixture(t)
	u := createUser(t, db, "ghost", false, false)
	token, err := j.Issue(u.ID, false)
	assert.NoError(t, err)

	assert.NoError(t, db.Delete(&domain.User{}, "id = ?", u.ID).Error)

	w := doGet(r, "/me", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"Provided token is invalid"}`, w.Body.String())
}

func TestGateBannedUser(t *testing.T) {
	db, j, r := newGateFixture(t)
	u := createUser(t, db, "banned", false, false)
	token, err := j.Issue(u.ID, false)
	assert.NoError(t, err)

	// 登录后被封禁，旧令牌下一次请求即失效
	assert.NoError(t, db.Model(&domain.User{}).Where("id = ?", u.ID).Update("is_banned", true).Error)

	w := doGet(r, "/me", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"You are banned"}`, w.Body.String())
}

func TestGateAttachesPrincipal(t *testing.T) {
	db, j, r := newGateFixture(t)
	u := createUser(t, db, "anna", false, false)
	token, err := j.Issue(u.ID, false)
	assert.NoError(t, err)

	w := doGet(r, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"`+u.ID+`","isAdmin":false}`, w.Body.String())
}

func TestAdminOnlyRejectsNonAdmin(t *testing.T) {
	db, j, r := newGateFixture(t)
	u := createUser(t, db, "plain", false, false)
	token, err := j.Issue(u.ID, true) // 令牌声称管理员也没用
	assert.NoError(t, err)

	w := doGet(r, "/admin/users", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"You have no access to this resource"}`, w.Body.String())
}

func TestAdminOnlyRevokedRole(t *testing.T) {
	db, j, r := newGateFixture(t)
	u := createUser(t, db, "root", true, false)
	token, err := j.Issue(u.ID, true)
	assert.NoError(t, err)

	w := doGet(r, "/admin/users", token)
	assert.Equal(t, http.StatusOK, w.Code)

	// 撤掉角色后同一令牌被拒
	assert.NoError(t, db.Model(&domain.User{}).Where("id = ?", u.ID).Update("is_admin", false).Error)

	w = doGet(r, "/admin/users", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"You have no access to this resource"}`, w.Body.String())
}

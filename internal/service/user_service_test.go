package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"berg-stat-api/internal/repo"
	"berg-stat-api/pkg/apperr"
)

func TestRegisterAndDuplicates(t *testing.T) {
	db := newTestDB(t)
	jwter := newTestJWTer()
	svc := NewUserService(repo.NewUserRepo(db), jwter)

	res, err := svc.Register("anna@example.com", "anna", "secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	// 发下来的令牌立刻可用
	claims, err := jwter.Parse(res.Token)
	assert.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UID)
	assert.False(t, claims.IsAdmin)

	_, err = svc.Register("anna@example.com", "anna2", "secret")
	assert.EqualError(t, err, "User with that email already exists")
	assert.True(t, apperr.Is(err, apperr.KindConflict))

	_, err = svc.Register("anna2@example.com", "anna", "secret")
	assert.EqualError(t, err, "User with that username already exists")
	assert.True(t, apperr.Is(err, apperr.KindConflict))

	_, err = svc.Register("anna2@example.com", "anna2", "secret")
	assert.NoError(t, err)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repo.NewUserRepo(db), newTestJWTer())
	u := seedUser(t, db, "bob", false, false)

	// 邮箱或用户名都能登录
	token, err := svc.Login(u.Email, "secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	token, err = svc.Login("bob", "secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login("bob", "wrong-password")
	assert.EqualError(t, err, "Wrong credentials")

	_, err = svc.Login("nobody", "secret")
	assert.EqualError(t, err, "Wrong credentials")
}

func TestLoginBanned(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repo.NewUserRepo(db), newTestJWTer())
	seedUser(t, db, "banned", false, true)

	_, err := svc.Login("banned", "secret")
	assert.EqualError(t, err, "You are banned")
	assert.True(t, apperr.Is(err, apperr.KindForbidden))
}

func TestAdminLoginRequiresAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repo.NewUserRepo(db), newTestJWTer())
	seedUser(t, db, "plain", false, false)
	seedUser(t, db, "root", true, false)

	// 非管理员与错误密码同文案，不泄露角色
	_, err := svc.AdminLogin("plain", "secret")
	assert.EqualError(t, err, "Wrong credentials")
	assert.True(t, apperr.Is(err, apperr.KindForbidden))

	token, err := svc.AdminLogin("root", "secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repo.NewUserRepo(db), newTestJWTer())
	u := seedUser(t, db, "carol", false, false)

	err := svc.ChangePassword(u.ID, "nope", "newpass")
	assert.EqualError(t, err, "Wrong password")

	err = svc.ChangePassword("missing-id", "secret", "newpass")
	assert.EqualError(t, err, "User not exists")

	err = svc.ChangePassword(u.ID, "secret", "newpass")
	assert.NoError(t, err)

	_, err = svc.Login("carol", "secret")
	assert.EqualError(t, err, "Wrong credentials")
	_, err = svc.Login("carol", "newpass")
	assert.NoError(t, err)
}

func TestBlockUnblockUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repo.NewUserRepo(db), newTestJWTer())
	u := seedUser(t, db, "dave", false, false)

	blocked, err := svc.SetBanned(u.ID, true)
	assert.NoError(t, err)
	assert.True(t, blocked.IsBanned)

	list, err := svc.ListBlocked()
	assert.NoError(t, err)
	assert.Len(t, list, 1)

	unblocked, err := svc.SetBanned(u.ID, false)
	assert.NoError(t, err)
	assert.False(t, unblocked.IsBanned)

	_, err = svc.SetBanned("missing-id", true)
	assert.EqualError(t, err, "User not found")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestDeleteUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repo.NewUserRepo(db), newTestJWTer())
	u := seedUser(t, db, "eve", false, false)

	assert.NoError(t, svc.Delete(u.ID))

	_, err := svc.GetByID(u.ID)
	assert.EqualError(t, err, "User not found")

	err = svc.Delete(u.ID)
	assert.EqualError(t, err, "User not found")
}

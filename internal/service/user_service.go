package service

import (
	"regexp"

	"berg-stat-api/internal/core/auth"
	"berg-stat-api/internal/domain"
	"berg-stat-api/pkg/apperr"
	"berg-stat-api/pkg/utils"
)

var emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)

type UserService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewUserService(users domain.UserRepository, jwter *auth.JWTer) *UserService {
	return &UserService{users: users, jwter: jwter}
}

type AuthResult struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// Register 注册前先做重复校验，保证报错文案；唯一索引兜底并发窗口
func (s *UserService) Register(email, username, password string) (*AuthResult, error) {
	if u, err := s.users.FindByEmail(email); err != nil {
		return nil, err
	} else if u != nil {
		return nil, apperr.Conflict("User with that email already exists")
	}
	if u, err := s.users.FindByUsername(username); err != nil {
		return nil, err
	} else if u != nil {
		return nil, apperr.Conflict("User with that username already exists")
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		Username:     username,
		PasswordHash: utils.HashPassword(password),
	}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	token, err := s.jwter.Issue(u.ID, u.IsAdmin)
	if err != nil {
		return nil, apperr.Internal("issue token failed", err)
	}
	return &AuthResult{User: u, Token: token}, nil
}

func (s *UserService) findUser(emailOrUsername string) (*domain.User, error) {
	if emailRe.MatchString(emailOrUsername) {
		return s.users.FindByEmail(emailOrUsername)
	}
	return s.users.FindByUsername(emailOrUsername)
}

func (s *UserService) authenticate(emailOrUsername, password string, requireAdmin bool, wrongCreds error) (string, error) {
	u, err := s.findUser(emailOrUsername)
	if err != nil {
		return "", err
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return "", wrongCreds
	}
	if requireAdmin && !u.IsAdmin {
		return "", wrongCreds
	}
	if u.IsBanned {
		return "", apperr.Forbidden("You are banned")
	}
	token, err := s.jwter.Issue(u.ID, u.IsAdmin)
	if err != nil {
		return "", apperr.Internal("issue token failed", err)
	}
	return token, nil
}

func (s *UserService) Login(emailOrUsername, password string) (string, error) {
	return s.authenticate(emailOrUsername, password, false,
		apperr.InvalidInput("Wrong credentials"))
}

// AdminLogin 非管理员与错误密码同样返回 Wrong credentials，不泄露账号角色
func (s *UserService) AdminLogin(emailOrUsername, password string) (string, error) {
	return s.authenticate(emailOrUsername, password, true,
		apperr.Forbidden("Wrong credentials"))
}

func (s *UserService) GetByID(id string) (*domain.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	return u, nil
}

func (s *UserService) List() ([]domain.User, error) { return s.users.List() }

func (s *UserService) ListBlocked() ([]domain.User, error) { return s.users.ListBanned() }

func (s *UserService) ChangePassword(id, oldPassword, newPassword string) error {
	u, err := s.users.FindByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return apperr.NotFound("User not exists")
	}
	if !utils.CheckPassword(oldPassword, u.PasswordHash) {
		return apperr.InvalidInput("Wrong password")
	}
	return s.users.UpdatePassword(id, utils.HashPassword(newPassword))
}

func (s *UserService) SetBanned(id string, banned bool) (*domain.User, error) {
	u, err := s.users.SetBanned(id, banned)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	return u, nil
}

func (s *UserService) Delete(id string) error {
	ok, err := s.users.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("User not found")
	}
	return nil
}

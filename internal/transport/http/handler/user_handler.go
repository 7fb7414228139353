package handler

import (
	"github.com/gin-gonic/gin"

	"berg-stat-api/internal/service"
	mdw "berg-stat-api/internal/transport/http/middleware"
	resp "berg-stat-api/internal/transport/http/response"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type registerIn struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=2"`
	Password string `json:"password" binding:"required,min=4"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var in registerIn
	if !resp.BindJSON(c, &in) {
		return
	}
	res, err := h.users.Register(in.Email, in.Username, in.Password)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"user": res.User, "token": res.Token})
}

type loginIn struct {
	EmailOrUsername string `json:"emailOrUsername" binding:"required,min=2"`
	Password        string `json:"password" binding:"required,min=4"`
}

func (h *UserHandler) Login(c *gin.Context) {
	var in loginIn
	if !resp.BindJSON(c, &in) {
		return
	}
	token, err := h.users.Login(in.EmailOrUsername, in.Password)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "message": "Successfully logged in"})
}

func (h *UserHandler) Me(c *gin.Context) {
	p, _ := mdw.CurrentPrincipal(c)
	u, err := h.users.GetByID(p.ID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"user": u})
}

func (h *UserHandler) DeleteMe(c *gin.Context) {
	p, _ := mdw.CurrentPrincipal(c)
	if err := h.users.Delete(p.ID); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Account deleted"})
}

type changePasswordIn struct {
	OldPassword string `json:"oldPassword" binding:"required,min=4"`
	NewPassword string `json:"newPassword" binding:"required,min=4"`
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var in changePasswordIn
	if !resp.BindJSON(c, &in) {
		return
	}
	p, _ := mdw.CurrentPrincipal(c)
	if err := h.users.ChangePassword(p.ID, in.OldPassword, in.NewPassword); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Password updated"})
}

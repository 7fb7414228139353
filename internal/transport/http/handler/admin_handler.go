package handler

import (
	"github.com/gin-gonic/gin"

	"berg-stat-api/internal/service"
	resp "berg-stat-api/internal/transport/http/response"
)

// AdminHandler 管理端的全部动作：用户/观点/地点/标签的治理操作
type AdminHandler struct {
	users    *service.UserService
	opinions *service.OpinionService
	places   *service.PlaceService
	tags     *service.TagService
}

func NewAdminHandler(
	users *service.UserService,
	opinions *service.OpinionService,
	places *service.PlaceService,
	tags *service.TagService,
) *AdminHandler {
	return &AdminHandler{users: users, opinions: opinions, places: places, tags: tags}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var in loginIn
	if !resp.BindJSON(c, &in) {
		return
	}
	token, err := h.users.AdminLogin(in.EmailOrUsername, in.Password)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "message": "Successfully logged in"})
}

// --- 用户治理 ---

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"users": users})
}

func (h *AdminHandler) ListBlockedUsers(c *gin.Context) {
	users, err := h.users.ListBlocked()
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"blockedUsers": users})
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	u, err := h.users.GetByID(c.Param("id"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"user": u})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.users.Delete(c.Param("id")); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Account deleted"})
}

func (h *AdminHandler) BlockUser(c *gin.Context) {
	u, err := h.users.SetBanned(c.Param("id"), true)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "User blocked", "user": u})
}

func (h *AdminHandler) UnblockUser(c *gin.Context) {
	u, err := h.users.SetBanned(c.Param("id"), false)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "User unblocked", "user": u})
}

// --- 观点治理 ---

func (h *AdminHandler) ListOpinions(c *gin.Context) {
	opinions, err := h.opinions.ListAllPlaces()
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"opinions": opinions})
}

func (h *AdminHandler) ListBlockedOpinions(c *gin.Context) {
	opinions, err := h.opinions.ListBlocked()
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"blockedOpinions": opinions})
}

func (h *AdminHandler) BlockOpinion(c *gin.Context) {
	o, err := h.opinions.SetBlocked(c.Param("id"), true)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Opinion blocked", "opinion": o})
}

func (h *AdminHandler) UnblockOpinion(c *gin.Context) {
	o, err := h.opinions.SetBlocked(c.Param("id"), false)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Opinion unblocked", "opinion": o})
}

func (h *AdminHandler) DeleteOpinion(c *gin.Context) {
	if err := h.opinions.DeleteByAdmin(c.Param("id")); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Opinion deleted"})
}

// --- 地点治理 ---

func (h *AdminHandler) AddPlace(c *gin.Context) {
	var in placeIn
	if !resp.BindJSON(c, &in) {
		return
	}
	if err := h.places.Add(c.Request.Context(), in.Name, in.coords()); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Place has been added"})
}

func (h *AdminHandler) UpdatePlace(c *gin.Context) {
	var in placeIn
	if !resp.BindJSON(c, &in) {
		return
	}
	p, err := h.places.Update(c.Request.Context(), c.Param("oldName"), in.Name, in.coords())
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Place updated", "place": p})
}

func (h *AdminHandler) DeletePlace(c *gin.Context) {
	if err := h.places.Delete(c.Request.Context(), c.Param("placeName")); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Place deleted"})
}

// --- 标签治理 ---

type tagAddIn struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
}

func (h *AdminHandler) AddTag(c *gin.Context) {
	var in tagAddIn
	if !resp.BindJSON(c, &in) {
		return
	}
	if err := h.tags.Add(c.Request.Context(), in.Name, in.Category); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Tag has been added"})
}

func (h *AdminHandler) ListTags(c *gin.Context) {
	tags, err := h.tags.GetAll(c.Request.Context(), false)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"tags": tags})
}

func (h *AdminHandler) ActivateTag(c *gin.Context) {
	t, err := h.tags.SetActive(c.Request.Context(), c.Param("tagName"), true)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Tag activated", "tag": t})
}

func (h *AdminHandler) DeactivateTag(c *gin.Context) {
	t, err := h.tags.SetActive(c.Request.Context(), c.Param("tagName"), false)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Tag deactivated", "tag": t})
}

func (h *AdminHandler) DeleteTag(c *gin.Context) {
	if err := h.tags.Delete(c.Request.Context(), c.Param("tagName")); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Tag deleted"})
}

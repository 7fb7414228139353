package handler

import (
	"github.com/gin-gonic/gin"

	"berg-stat-api/internal/service"
	resp "berg-stat-api/internal/transport/http/response"
)

type TagHandler struct {
	tags *service.TagService
}

func NewTagHandler(tags *service.TagService) *TagHandler {
	return &TagHandler{tags: tags}
}

func (h *TagHandler) GetActive(c *gin.Context) {
	tags, err := h.tags.GetAll(c.Request.Context(), true)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"tags": tags})
}

package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"berg-stat-api/internal/service"
	mdw "berg-stat-api/internal/transport/http/middleware"
	resp "berg-stat-api/internal/transport/http/response"
)

type OpinionHandler struct {
	opinions *service.OpinionService
}

func NewOpinionHandler(opinions *service.OpinionService) *OpinionHandler {
	return &OpinionHandler{opinions: opinions}
}

type tagIn struct {
	Name     string `json:"name" binding:"required,min=1"`
	Category string `json:"category" binding:"required,min=1"`
}

type opinionIn struct {
	Text string    `json:"text"`
	Date time.Time `json:"date" binding:"required"`
	Tags []tagIn   `json:"tags" binding:"omitempty,dive"`
}

func toTagInputs(tags []tagIn) []service.TagInput {
	out := make([]service.TagInput, 0, len(tags))
	for _, t := range tags {
		out = append(out, service.TagInput{Name: t.Name, Category: t.Category})
	}
	return out
}

func (h *OpinionHandler) Add(c *gin.Context) {
	var in opinionIn
	if !resp.BindJSON(c, &in) {
		return
	}
	p, _ := mdw.CurrentPrincipal(c)
	o, err := h.opinions.Add(c.Param("placeName"), p.ID, in.Text, in.Date, toTagInputs(in.Tags))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Opinion added", "opinion": o})
}

func (h *OpinionHandler) ListForPlace(c *gin.Context) {
	opinions, err := h.opinions.ListForPlace(c.Param("placeName"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"opinions": opinions})
}

func (h *OpinionHandler) Get(c *gin.Context) {
	o, err := h.opinions.Get(c.Param("opinionId"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"opinion": o})
}

func (h *OpinionHandler) Update(c *gin.Context) {
	var in opinionIn
	if !resp.BindJSON(c, &in) {
		return
	}
	p, _ := mdw.CurrentPrincipal(c)
	o, err := h.opinions.Update(c.Param("opinionId"), p.ID, in.Text, in.Date, toTagInputs(in.Tags))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Opinion updated", "opinion": o})
}

func (h *OpinionHandler) Delete(c *gin.Context) {
	p, _ := mdw.CurrentPrincipal(c)
	if err := h.opinions.Delete(c.Param("opinionId"), p.ID); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Opinion deleted"})
}

func (h *OpinionHandler) Like(c *gin.Context) {
	p, _ := mdw.CurrentPrincipal(c)
	if err := h.opinions.Like(c.Param("opinionId"), p.ID); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Opinion liked"})
}

func (h *OpinionHandler) Unlike(c *gin.Context) {
	p, _ := mdw.CurrentPrincipal(c)
	if err := h.opinions.Unlike(c.Param("opinionId"), p.ID); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Opinion unliked"})
}

func (h *OpinionHandler) ReportReasons(c *gin.Context) {
	resp.OK(c, gin.H{"reasons": h.opinions.ReportReasons()})
}

type reportIn struct {
	Text   string `json:"text"`
	Reason string `json:"reason" binding:"required,min=1"`
}

func (h *OpinionHandler) Report(c *gin.Context) {
	var in reportIn
	if !resp.BindJSON(c, &in) {
		return
	}
	p, _ := mdw.CurrentPrincipal(c)
	o, err := h.opinions.Report(c.Param("opinionId"), p.ID, in.Reason, in.Text)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Opinion reported", "opinion": o})
}

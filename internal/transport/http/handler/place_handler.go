package handler

import (
	"github.com/gin-gonic/gin"

	"berg-stat-api/internal/domain"
	"berg-stat-api/internal/service"
	resp "berg-stat-api/internal/transport/http/response"
)

type PlaceHandler struct {
	places *service.PlaceService
}

func NewPlaceHandler(places *service.PlaceService) *PlaceHandler {
	return &PlaceHandler{places: places}
}

type coordinatesIn struct {
	Latitude  *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
	Elevation *float64 `json:"elevation" binding:"required,gte=0"`
}

type placeIn struct {
	Name        string        `json:"name" binding:"required"`
	Coordinates coordinatesIn `json:"coordinates" binding:"required"`
}

func (in *placeIn) coords() domain.Coordinates {
	return domain.Coordinates{
		Latitude:  *in.Coordinates.Latitude,
		Longitude: *in.Coordinates.Longitude,
		Elevation: *in.Coordinates.Elevation,
	}
}

func (h *PlaceHandler) GetAll(c *gin.Context) {
	places, err := h.places.GetAll()
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"places": places})
}

func (h *PlaceHandler) Get(c *gin.Context) {
	p, err := h.places.GetByName(c.Request.Context(), c.Param("placeName"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"place": p})
}

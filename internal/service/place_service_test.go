package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"berg-stat-api/internal/domain"
	"berg-stat-api/internal/repo"
	"berg-stat-api/pkg/apperr"
)

func testCoords() domain.Coordinates {
	return domain.Coordinates{Latitude: 49.23, Longitude: 19.98, Elevation: 1894}
}

func TestPlaceAddAndDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlaceService(repo.NewPlaceRepo(db), nil)
	ctx := context.Background()

	assert.NoError(t, svc.Add(ctx, "Giewont", testCoords()))

	err := svc.Add(ctx, "Giewont", testCoords())
	assert.EqualError(t, err, "Place with that name already exists")
	assert.True(t, apperr.Is(err, apperr.KindConflict))

	p, err := svc.GetByName(ctx, "Giewont")
	assert.NoError(t, err)
	assert.Equal(t, "Giewont", p.Name)
	assert.Equal(t, 1894.0, p.Coordinates.Elevation)
}

func TestPlaceGetByNameMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlaceService(repo.NewPlaceRepo(db), nil)

	_, err := svc.GetByName(context.Background(), "Nowhere")
	assert.EqualError(t, err, "Place not found")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestPlaceUpdateRename(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlaceService(repo.NewPlaceRepo(db), nil)
	ctx := context.Background()

	assert.NoError(t, svc.Add(ctx, "Giewont", testCoords()))

	coords := domain.Coordinates{Latitude: 49.18, Longitude: 20.09, Elevation: 2499}
	p, err := svc.Update(ctx, "Giewont", "Rysy", coords)
	assert.NoError(t, err)
	assert.Equal(t, "Rysy", p.Name)
	assert.Equal(t, 2499.0, p.Coordinates.Elevation)

	// 旧名失效
	_, err = svc.GetByName(ctx, "Giewont")
	assert.EqualError(t, err, "Place not found")

	_, err = svc.Update(ctx, "Giewont", "Kasprowy", coords)
	assert.EqualError(t, err, "Place not found")
}

func TestPlaceDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewPlaceService(repo.NewPlaceRepo(db), nil)
	ctx := context.Background()

	assert.NoError(t, svc.Add(ctx, "Giewont", testCoords()))
	assert.NoError(t, svc.Delete(ctx, "Giewont"))

	err := svc.Delete(ctx, "Giewont")
	assert.EqualError(t, err, "Place not found")

	all, err := svc.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, all)
}

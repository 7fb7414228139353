package service

import (
	"context"
	"time"

	"berg-stat-api/internal/core/cache"
	"berg-stat-api/internal/domain"
	"berg-stat-api/pkg/apperr"
	"berg-stat-api/pkg/utils"
)

const placeCacheTTL = 5 * time.Minute

type PlaceService struct {
	places domain.PlaceRepository
	cache  *cache.Cache // 可为 nil（未配置 redis 时直连库）
}

func NewPlaceService(places domain.PlaceRepository, c *cache.Cache) *PlaceService {
	return &PlaceService{places: places, cache: c}
}

func placeKey(name string) string { return "place:name:" + name }

func (s *PlaceService) Add(ctx context.Context, name string, coords domain.Coordinates) error {
	existing, err := s.places.FindByName(name)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperr.Conflict("Place with that name already exists")
	}
	p := &domain.Place{ID: utils.NewID(), Name: name, Coordinates: coords}
	if err := s.places.Create(p); err != nil {
		return err
	}
	if s.cache != nil {
		// 清掉可能存在的负缓存
		s.cache.Invalidate(ctx, placeKey(name))
	}
	return nil
}

func (s *PlaceService) GetAll() ([]domain.Place, error) { return s.places.List() }

func (s *PlaceService) GetByName(ctx context.Context, name string) (*domain.Place, error) {
	var p *domain.Place
	var err error
	if s.cache != nil {
		p, err = cache.GetOrLoadJSON(s.cache, ctx, placeKey(name), placeCacheTTL,
			func(ctx context.Context) (*domain.Place, error) {
				return s.places.FindByName(name)
			})
	} else {
		p, err = s.places.FindByName(name)
	}
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("Place not found")
	}
	return p, nil
}

func (s *PlaceService) Update(ctx context.Context, oldName, name string, coords domain.Coordinates) (*domain.Place, error) {
	p, err := s.places.Update(oldName, name, coords)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("Place not found")
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, placeKey(oldName), placeKey(name))
	}
	return p, nil
}

func (s *PlaceService) Delete(ctx context.Context, name string) error {
	ok, err := s.places.DeleteByName(name)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Place not found")
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, placeKey(name))
	}
	return nil
}

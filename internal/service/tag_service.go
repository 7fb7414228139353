package service

import (
	"context"
	"time"

	"berg-stat-api/internal/core/cache"
	"berg-stat-api/internal/domain"
	"berg-stat-api/pkg/apperr"
	"berg-stat-api/pkg/utils"
)

const tagCacheTTL = time.Minute

const activeTagsKey = "tags:active"

type TagService struct {
	tags  domain.TagRepository
	cache *cache.Cache // 可为 nil
}

func NewTagService(tags domain.TagRepository, c *cache.Cache) *TagService {
	return &TagService{tags: tags, cache: c}
}

func (s *TagService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, activeTagsKey)
	}
}

func (s *TagService) Add(ctx context.Context, name, category string) error {
	existing, err := s.tags.FindByName(name)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperr.Conflict("Tag with that name already exists")
	}
	t := &domain.Tag{ID: utils.NewID(), Name: name, Category: category, IsActive: true}
	if err := s.tags.Create(t); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *TagService) GetAll(ctx context.Context, onlyActive bool) ([]domain.Tag, error) {
	if onlyActive && s.cache != nil {
		out, err := cache.GetOrLoadJSON(s.cache, ctx, activeTagsKey, tagCacheTTL,
			func(ctx context.Context) (*[]domain.Tag, error) {
				tags, e := s.tags.List(true)
				if e != nil {
					return nil, e
				}
				return &tags, nil
			})
		if err != nil {
			return nil, err
		}
		if out == nil {
			return []domain.Tag{}, nil
		}
		return *out, nil
	}
	return s.tags.List(onlyActive)
}

func (s *TagService) SetActive(ctx context.Context, name string, active bool) (*domain.Tag, error) {
	t, err := s.tags.SetActive(name, active)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.NotFound("Tag not found")
	}
	s.invalidate(ctx)
	return t, nil
}

func (s *TagService) Delete(ctx context.Context, name string) error {
	ok, err := s.tags.DeleteByName(name)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Tag not found")
	}
	s.invalidate(ctx)
	return nil
}

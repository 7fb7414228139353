package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"berg-stat-api/internal/repo"
	"berg-stat-api/pkg/apperr"
)

func TestTagAddAndDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(repo.NewTagRepo(db), nil)
	ctx := context.Background()

	assert.NoError(t, svc.Add(ctx, "hiking", "activity"))

	err := svc.Add(ctx, "hiking", "activity")
	assert.EqualError(t, err, "Tag with that name already exists")
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestTagActivation(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(repo.NewTagRepo(db), nil)
	ctx := context.Background()

	assert.NoError(t, svc.Add(ctx, "hiking", "activity"))
	assert.NoError(t, svc.Add(ctx, "crowded", "warning"))

	tag, err := svc.SetActive(ctx, "crowded", false)
	assert.NoError(t, err)
	assert.False(t, tag.IsActive)

	active, err := svc.GetAll(ctx, true)
	assert.NoError(t, err)
	assert.Len(t, active, 1)
	assert.Equal(t, "hiking", active[0].Name)

	all, err := svc.GetAll(ctx, false)
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	tag, err = svc.SetActive(ctx, "crowded", true)
	assert.NoError(t, err)
	assert.True(t, tag.IsActive)

	_, err = svc.SetActive(ctx, "missing", true)
	assert.EqualError(t, err, "Tag not found")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestTagDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(repo.NewTagRepo(db), nil)
	ctx := context.Background()

	assert.NoError(t, svc.Add(ctx, "hiking", "activity"))
	assert.NoError(t, svc.Delete(ctx, "hiking"))

	err := svc.Delete(ctx, "hiking")
	assert.EqualError(t, err, "Tag not found")
}

package repo

import (
	"errors"

	"gorm.io/gorm"

	"berg-stat-api/internal/domain"
	"berg-stat-api/pkg/utils"
)

type TagRepo struct{ db *gorm.DB }

func NewTagRepo(db *gorm.DB) *TagRepo { return &TagRepo{db: db} }

func (r *TagRepo) Create(t *domain.Tag) error { return r.db.Create(t).Error }

func (r *TagRepo) FindByName(name string) (*domain.Tag, error) {
	var t domain.Tag
	err := r.db.First(&t, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FirstOrCreate 观点携带的标签按名称归一到 tags 表
func (r *TagRepo) FirstOrCreate(name, category string) (*domain.Tag, error) {
	var t domain.Tag
	err := r.db.Where("name = ?", name).
		Attrs(domain.Tag{ID: utils.NewID(), Category: category, IsActive: true}).
		FirstOrCreate(&t, domain.Tag{Name: name}).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TagRepo) List(onlyActive bool) ([]domain.Tag, error) {
	q := r.db.Order("name asc")
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}
	var tags []domain.Tag
	err := q.Find(&tags).Error
	return tags, err
}

func (r *TagRepo) SetActive(name string, active bool) (*domain.Tag, error) {
	res := r.db.Model(&domain.Tag{}).Where("name = ?", name).Update("is_active", active)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByName(name)
}

func (r *TagRepo) DeleteByName(name string) (bool, error) {
	res := r.db.Where("name = ?", name).Delete(&domain.Tag{})
	return res.RowsAffected > 0, res.Error
}

package repo

import (
	"errors"

	"gorm.io/gorm"

	"berg-stat-api/internal/domain"
)

type PlaceRepo struct{ db *gorm.DB }

func NewPlaceRepo(db *gorm.DB) *PlaceRepo { return &PlaceRepo{db: db} }

func (r *PlaceRepo) Create(p *domain.Place) error { return r.db.Create(p).Error }

func (r *PlaceRepo) FindByName(name string) (*domain.Place, error) {
	var p domain.Place
	err := r.db.First(&p, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlaceRepo) List() ([]domain.Place, error) {
	var places []domain.Place
	err := r.db.Order("name asc").Find(&places).Error
	return places, err
}

func (r *PlaceRepo) Update(oldName string, name string, coords domain.Coordinates) (*domain.Place, error) {
	res := r.db.Model(&domain.Place{}).Where("name = ?", oldName).Updates(map[string]any{
		"name":            name,
		"coord_latitude":  coords.Latitude,
		"coord_longitude": coords.Longitude,
		"coord_elevation": coords.Elevation,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByName(name)
}

func (r *PlaceRepo) DeleteByName(name string) (bool, error) {
	res := r.db.Where("name = ?", name).Delete(&domain.Place{})
	return res.RowsAffected > 0, res.Error
}

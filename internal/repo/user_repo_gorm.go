package repo

import (
	"errors"

	"gorm.io/gorm"

	"berg-stat-api/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u *domain.User) error { return r.db.Create(u).Error }

func (r *UserRepo) FindByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindByUsername(username string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) List() ([]domain.User, error) {
	var users []domain.User
	err := r.db.Order("created_at desc").Find(&users).Error
	return users, err
}

func (r *UserRepo) ListBanned() ([]domain.User, error) {
	var users []domain.User
	err := r.db.Where("is_banned = ?", true).Order("created_at desc").Find(&users).Error
	return users, err
}

func (r *UserRepo) SetBanned(id string, banned bool) (*domain.User, error) {
	res := r.db.Model(&domain.User{}).Where("id = ?", id).Update("is_banned", banned)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(id)
}

func (r *UserRepo) UpdatePassword(id, passwordHash string) error {
	return r.db.Model(&domain.User{}).Where("id = ?", id).Update("password_hash", passwordHash).Error
}

func (r *UserRepo) Delete(id string) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&domain.User{})
	return res.RowsAffected > 0, res.Error
}

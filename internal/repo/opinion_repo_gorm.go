package repo

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"berg-stat-api/internal/domain"
)

type OpinionRepo struct{ db *gorm.DB }

func NewOpinionRepo(db *gorm.DB) *OpinionRepo { return &OpinionRepo{db: db} }

func (r *OpinionRepo) Create(o *domain.Opinion) error { return r.db.Create(o).Error }

func (r *OpinionRepo) FindByID(id string) (*domain.Opinion, error) {
	var o domain.Opinion
	err := r.db.Preload("Tags").First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OpinionRepo) ListByPlace(placeID string) ([]domain.Opinion, error) {
	var ops []domain.Opinion
	err := r.db.Preload("Tags").
		Where("place_id = ? AND is_deleted = ? AND is_blocked = ?", placeID, false, false).
		Order("date desc").
		Find(&ops).Error
	return ops, err
}

func (r *OpinionRepo) ListAll() ([]domain.Opinion, error) {
	var ops []domain.Opinion
	err := r.db.Preload("Tags").
		Where("is_deleted = ?", false).
		Order("date desc").
		Find(&ops).Error
	return ops, err
}

func (r *OpinionRepo) ListBlocked() ([]domain.Opinion, error) {
	var ops []domain.Opinion
	err := r.db.Preload("Tags").
		Where("is_blocked = ?", true).
		Order("date desc").
		Find(&ops).Error
	return ops, err
}

func (r *OpinionRepo) Update(id, text string, date time.Time, tags []domain.Tag) (*domain.Opinion, error) {
	var o domain.Opinion
	err := r.db.First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(&o).Association("Tags").Replace(tags); err != nil {
		return nil, err
	}
	err = r.db.Model(&o).Updates(map[string]any{"text": text, "date": date}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *OpinionRepo) SetDeleted(id string) (bool, error) {
	res := r.db.Model(&domain.Opinion{}).Where("id = ?", id).Update("is_deleted", true)
	return res.RowsAffected > 0, res.Error
}

func (r *OpinionRepo) SetBlocked(id string, blocked bool) (*domain.Opinion, error) {
	res := r.db.Model(&domain.Opinion{}).Where("id = ?", id).Update("is_blocked", blocked)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(id)
}

func (r *OpinionRepo) AddLike(opinionID, userID string) error {
	return r.db.Create(&domain.Like{OpinionID: opinionID, UserID: userID}).Error
}

func (r *OpinionRepo) RemoveLike(opinionID, userID string) (bool, error) {
	res := r.db.Where("opinion_id = ? AND user_id = ?", opinionID, userID).Delete(&domain.Like{})
	return res.RowsAffected > 0, res.Error
}

func (r *OpinionRepo) HasLike(opinionID, userID string) (bool, error) {
	var n int64
	err := r.db.Model(&domain.Like{}).
		Where("opinion_id = ? AND user_id = ?", opinionID, userID).
		Count(&n).Error
	return n > 0, err
}

func (r *OpinionRepo) LikedUsernames(opinionID string) ([]string, error) {
	var names []string
	err := r.db.Model(&domain.Like{}).
		Joins("JOIN users ON users.id = likes.user_id").
		Where("likes.opinion_id = ?", opinionID).
		Pluck("users.username", &names).Error
	return names, err
}

func (r *OpinionRepo) HasReport(opinionID, authorID string) (bool, error) {
	var n int64
	err := r.db.Model(&domain.Report{}).
		Where("opinion_id = ? AND author_id = ?", opinionID, authorID).
		Count(&n).Error
	return n > 0, err
}

func (r *OpinionRepo) CountReports(opinionID string) (int64, error) {
	var n int64
	err := r.db.Model(&domain.Report{}).Where("opinion_id = ?", opinionID).Count(&n).Error
	return n, err
}

// AddReportAndMaybeBlock 追加举报并在达到阈值时置为屏蔽，单事务内完成。
// 阈值判断下沉到条件 UPDATE，由存储侧重新计数，避免两个并发举报
// 都读到 count=2 而都不触发屏蔽。
func (r *OpinionRepo) AddReportAndMaybeBlock(rep *domain.Report, threshold int) (*domain.Opinion, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rep).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Opinion{}).
			Where("id = ? AND (SELECT COUNT(*) FROM reports WHERE reports.opinion_id = ?) >= ?",
				rep.OpinionID, rep.OpinionID, threshold).
			Update("is_blocked", true).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(rep.OpinionID)
}

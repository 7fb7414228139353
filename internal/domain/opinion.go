package domain

import "time"

// ReportReasons 举报原因枚举，原样暴露给客户端
var ReportReasons = []string{"misleading", "vulgar", "faulty"}

func IsValidReportReason(reason string) bool {
	for _, r := range ReportReasons {
		if r == reason {
			return true
		}
	}
	return false
}

type Opinion struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	AuthorID  string    `gorm:"index;size:36;not null" json:"authorId"`
	PlaceID   string    `gorm:"index;size:36;not null" json:"placeId"`
	Text      string    `json:"text"`
	Date      time.Time `gorm:"not null" json:"date"`
	Tags      []Tag     `gorm:"many2many:opinion_tags" json:"tags"`
	IsBlocked bool      `gorm:"not null;default:false" json:"isBlocked"`
	IsDeleted bool      `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Opinion) TableName() string { return "opinions" }

type Report struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	OpinionID string `gorm:"size:36;not null;uniqueIndex:idx_reports_opinion_author" json:"opinionId"`
	AuthorID  string `gorm:"size:36;not null;uniqueIndex:idx_reports_opinion_author" json:"authorId"`
	Reason    string `gorm:"size:32;not null" json:"reason"`
	Text      string `json:"text"`
}

func (Report) TableName() string { return "reports" }

// Like 以 (opinion_id, user_id) 为键；用户名只在读侧投影出现
type Like struct {
	OpinionID string `gorm:"size:36;not null;uniqueIndex:idx_likes_opinion_user" json:"opinionId"`
	UserID    string `gorm:"size:36;not null;uniqueIndex:idx_likes_opinion_user" json:"userId"`
}

func (Like) TableName() string { return "likes" }

// AutoBlockThreshold 举报数达到阈值即自动屏蔽
const AutoBlockThreshold = 3

type OpinionRepository interface {
	Create(o *Opinion) error
	FindByID(id string) (*Opinion, error)
	// ListByPlace 只返回未删除未屏蔽的
	ListByPlace(placeID string) ([]Opinion, error)
	// ListAll 返回所有地点未删除的（含被屏蔽的）
	ListAll() ([]Opinion, error)
	ListBlocked() ([]Opinion, error)
	Update(id, text string, date time.Time, tags []Tag) (*Opinion, error)
	SetDeleted(id string) (bool, error)
	SetBlocked(id string, blocked bool) (*Opinion, error)

	AddLike(opinionID, userID string) error
	RemoveLike(opinionID, userID string) (bool, error)
	HasLike(opinionID, userID string) (bool, error)
	LikedUsernames(opinionID string) ([]string, error)

	HasReport(opinionID, authorID string) (bool, error)
	CountReports(opinionID string) (int64, error)
	// AddReportAndMaybeBlock 在单事务内追加举报并在达到阈值时屏蔽
	AddReportAndMaybeBlock(r *Report, threshold int) (*Opinion, error)
}

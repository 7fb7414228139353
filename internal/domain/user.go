package domain

import "time"

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:191" json:"email"`
	Username     string    `gorm:"uniqueIndex;size:64" json:"username"`
	PasswordHash string    `gorm:"size:191" json:"-"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"isAdmin"`
	IsBanned     bool      `gorm:"not null;default:false" json:"isBanned"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	FindByUsername(username string) (*User, error)
	List() ([]User, error)
	ListBanned() ([]User, error)
	// SetBanned 返回更新后的用户，目标不存在时返回 nil
	SetBanned(id string, banned bool) (*User, error)
	UpdatePassword(id, passwordHash string) error
	Delete(id string) (bool, error)
}

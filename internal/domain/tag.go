package domain

type Tag struct {
	ID       string `gorm:"primaryKey;size:36" json:"-"`
	Name     string `gorm:"uniqueIndex;size:191" json:"name"`
	Category string `gorm:"size:64" json:"category"`
	IsActive bool   `gorm:"not null;default:true" json:"isActive"`
}

func (Tag) TableName() string { return "tags" }

type TagRepository interface {
	Create(t *Tag) error
	FindByName(name string) (*Tag, error)
	FirstOrCreate(name, category string) (*Tag, error)
	List(onlyActive bool) ([]Tag, error)
	SetActive(name string, active bool) (*Tag, error)
	DeleteByName(name string) (bool, error)
}

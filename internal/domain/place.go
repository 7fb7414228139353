package domain

type Coordinates struct {
	Latitude  float64 `gorm:"not null" json:"latitude"`
	Longitude float64 `gorm:"not null" json:"longitude"`
	Elevation float64 `gorm:"not null" json:"elevation"`
}

type Place struct {
	ID          string      `gorm:"primaryKey;size:36" json:"id"`
	Name        string      `gorm:"uniqueIndex;size:191" json:"name"`
	Coordinates Coordinates `gorm:"embedded;embeddedPrefix:coord_" json:"coordinates"`
}

func (Place) TableName() string { return "places" }

type PlaceRepository interface {
	Create(p *Place) error
	FindByName(name string) (*Place, error)
	List() ([]Place, error)
	// Update 按旧名称定位，目标不存在时返回 nil
	Update(oldName string, name string, coords Coordinates) (*Place, error)
	DeleteByName(name string) (bool, error)
}

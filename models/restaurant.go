package models

type Restaurant struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	LocationID uint   `gorm:"not null;index" json:"location_id"`
	Address    string `gorm:"type:varchar(255)" json:"address"`
	Phone      string `gorm:"type:varchar(50)" json:"phone"`
	// FloorShape menyimpan outline ruangan dalam bentuk JSON string
	// (SVG path atau polygon points), hanya untuk tampilan denah.
	FloorShape string `gorm:"type:text" json:"floor_shape"`

	Tables []Table `gorm:"foreignKey:RestaurantID" json:"tables,omitempty"`
}

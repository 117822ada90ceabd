package models

type Location struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);unique;not null" json:"name"`

	Restaurants []Restaurant `gorm:"foreignKey:LocationID" json:"restaurants,omitempty"`
}

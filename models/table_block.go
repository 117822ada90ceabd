package models

// TableBlock adalah jendela waktu di mana admin menutup sebuah meja
// (maintenance, VIP hold), terpisah dari reservasi apa pun.
type TableBlock struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	TableID      uint   `gorm:"not null;index:idx_block_table_date" json:"table_id"`
	RestaurantID uint   `gorm:"not null;index" json:"restaurant_id"`
	Date         string `gorm:"type:varchar(10);not null;index:idx_block_table_date" json:"date"`
	StartTime    string `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime      string `gorm:"type:varchar(5);not null" json:"end_time"`
	Reason       string `gorm:"type:varchar(255)" json:"reason"`
}

package models

import "time"

const (
	ChangeInsert = "INSERT"
	ChangeUpdate = "UPDATE"
	ChangeDelete = "DELETE"
)

// ChangeLog mencatat setiap mutasi reservasi/block/meja sehingga client
// yang melakukan polling cukup menanyakan "ada perubahan sejak X?".
type ChangeLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TableName    string    `gorm:"type:varchar(50);not null;index:idx_change_table" json:"table_name"`
	RecordID     uint      `gorm:"not null" json:"record_id"`
	ActionType   string    `gorm:"type:varchar(10);not null;index:idx_change_table" json:"action_type"`
	RestaurantID uint      `gorm:"not null;index" json:"restaurant_id"`
	ChangedAt    time.Time `gorm:"not null;index" json:"changed_at"`
	Processed    bool      `gorm:"not null;default:false;index" json:"processed"`
}

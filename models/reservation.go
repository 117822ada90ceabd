package models

import "time"

const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationDeclined  = "declined"
	ReservationCancelled = "cancelled"
)

// ActiveReservationStatuses adalah status yang masih menempati slot waktu
// untuk pengecekan konflik.
func ActiveReservationStatuses() []string {
	return []string{ReservationPending, ReservationConfirmed}
}

type Reservation struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Code         string `gorm:"type:varchar(36);uniqueIndex;not null" json:"code"`
	TableID      uint   `gorm:"not null;index:idx_table_date" json:"table_id"`
	RestaurantID uint   `gorm:"not null;index" json:"restaurant_id"`
	// Date dan jam disimpan sebagai string zero-padded ("2006-01-02",
	// "15:04") supaya perbandingan leksikografis di SQL sama dengan
	// perbandingan waktu, baik di MySQL maupun SQLite.
	Date         string    `gorm:"type:varchar(10);not null;index:idx_table_date" json:"date"`
	StartTime    string    `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime      string    `gorm:"type:varchar(5);not null" json:"end_time"`
	UserName     string    `gorm:"type:varchar(100);not null" json:"user_name"`
	UserPhone    string    `gorm:"type:varchar(50);not null" json:"user_phone"`
	UserEmail    string    `gorm:"type:varchar(100);not null" json:"user_email"`
	PreorderNote string    `gorm:"type:text" json:"preorder_note"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

package models

// Status turunan per meja/tanggal, dihitung ulang di setiap request
// (tidak pernah disimpan di tabel).
const (
	TableAvailable = "available"
	TablePending   = "pending"
	TableReserved  = "reserved"
	TableBlocked   = "blocked"
)

type Table struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RestaurantID uint   `gorm:"not null;index" json:"restaurant_id"`
	Name         string `gorm:"type:varchar(50);not null" json:"name"`
	Capacity     int    `gorm:"not null;default:4" json:"capacity"`
	PositionX    int    `gorm:"not null;default:0" json:"position_x"`
	PositionY    int    `gorm:"not null;default:0" json:"position_y"`
	Width        int    `gorm:"not null;default:100" json:"width"`
	Height       int    `gorm:"not null;default:80" json:"height"`
	Shape        string `gorm:"type:varchar(20);not null;default:'rect'" json:"shape"` // rect atau circle
	Zone         string `gorm:"type:varchar(50)" json:"zone"`                          // Window, Patio, VIP, dll.
}

// TableAvailability adalah meja plus status turunan untuk satu tanggal.
type TableAvailability struct {
	Table
	Status string `json:"status"`
}

package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservation/models"
)

// RecordChange menulis satu baris change feed di dalam transaksi mutasi,
// sehingga polling client bisa mendeteksi perubahan tanpa menarik seluruh
// data. Feed ini bukan sumber kebenaran status; status selalu dihitung
// ulang dari reservasi/block saat di-query.
func RecordChange(tx *gorm.DB, tableName string, recordID uint, action string, restaurantID uint) error {
	return tx.Create(&models.ChangeLog{
		TableName:    tableName,
		RecordID:     recordID,
		ActionType:   action,
		RestaurantID: restaurantID,
		ChangedAt:    time.Now().UTC(),
	}).Error
}

type ChangeSummary struct {
	Changed    bool       `json:"changed"`
	Count      int64      `json:"count"`
	LastChange *time.Time `json:"last_change,omitempty"`
}

// ChangesSince merangkum mutasi sebuah restoran sejak titik waktu tertentu.
// Dipakai klien polling (interval 15 detik di dashboard admin) untuk tahu
// kapan harus refetch availability.
func ChangesSince(db *gorm.DB, restaurantID uint, since time.Time) (*ChangeSummary, error) {
	summary := &ChangeSummary{}

	q := db.Model(&models.ChangeLog{}).
		Where("restaurant_id = ? AND changed_at > ?", restaurantID, since)
	if err := q.Count(&summary.Count).Error; err != nil {
		return nil, err
	}

	if summary.Count > 0 {
		summary.Changed = true
		var last models.ChangeLog
		if err := db.Where("restaurant_id = ?", restaurantID).
			Order("changed_at DESC").
			First(&last).Error; err != nil {
			return nil, err
		}
		summary.LastChange = &last.ChangedAt
	}

	return summary, nil
}

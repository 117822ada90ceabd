package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

// Status paksaan yang bisa dipasang admin untuk satu meja/tanggal.
const (
	OverrideEmpty    = "empty"
	OverrideOccupied = "occupied"
	OverrideBlocked  = "blocked"
)

const (
	fullDayStart   = "00:00"
	overrideReason = "admin status override"
)

var ErrInvalidOverride = errors.New("status must be one of empty, occupied, blocked")

// ApplyTableStatus memaksa status efektif sebuah meja untuk satu tanggal:
//   - blocked  -> pastikan ada full-day block (00:00-24:00) sehingga
//     resolver mengembalikan blocked apa pun keadaan reservasinya
//   - empty    -> hapus full-day block override untuk meja/tanggal itu;
//     reservasi yang ada TIDAK dibatalkan dan tetap bisa diproses admin
//   - occupied -> ephemeral: tidak ada record yang disimpan, hanya dicatat
//     di change feed supaya klien lain segera refresh; refresh berikutnya
//     menghitung ulang status dari reservasi/block yang sebenarnya
func ApplyTableStatus(db *gorm.DB, table models.Table, date, status string) error {
	if !utils.ValidDate(date) {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	switch status {
	case OverrideBlocked:
		return db.Transaction(func(tx *gorm.DB) error {
			block := models.TableBlock{
				TableID:      table.ID,
				RestaurantID: table.RestaurantID,
				Date:         date,
				StartTime:    fullDayStart,
				EndTime:      utils.EndOfDay,
			}
			res := tx.Where(&block).Attrs(models.TableBlock{Reason: overrideReason}).FirstOrCreate(&block)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// Sudah ada full-day block, tidak ada yang berubah
				return nil
			}
			return RecordChange(tx, "table_blocks", block.ID, models.ChangeInsert, table.RestaurantID)
		})

	case OverrideEmpty:
		return db.Transaction(func(tx *gorm.DB) error {
			res := tx.Where("table_id = ? AND date = ? AND start_time = ? AND end_time = ?",
				table.ID, date, fullDayStart, utils.EndOfDay).
				Delete(&models.TableBlock{})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return nil
			}
			return RecordChange(tx, "table_blocks", table.ID, models.ChangeDelete, table.RestaurantID)
		})

	case OverrideOccupied:
		return RecordChange(db, "tables", table.ID, models.ChangeUpdate, table.RestaurantID)

	default:
		return ErrInvalidOverride
	}
}

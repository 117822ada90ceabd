package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservation/models"
)

var (
	// ErrSlotUnavailable -> slot sudah ditempati reservasi pending/confirmed
	ErrSlotUnavailable = errors.New("table is already reserved for the selected time range")
	// ErrTableBlocked -> slot bertabrakan dengan block admin
	ErrTableBlocked = errors.New("table is blocked for the selected time range")
)

// ResolveTableStatus menghitung status harian satu meja dari block dan
// reservasi aktif pada tanggal itu. Fungsi murni, dihitung ulang setiap
// request. Urutan prioritas tetap: blocked > pending > reserved > available
// (block admin harus menutupi tampilan reservasi confirmed sekalipun).
func ResolveTableStatus(blocks []models.TableBlock, reservations []models.Reservation) string {
	if len(blocks) > 0 {
		return models.TableBlocked
	}
	for _, r := range reservations {
		if r.Status == models.ReservationPending {
			return models.TablePending
		}
	}
	for _, r := range reservations {
		if r.Status == models.ReservationConfirmed {
			return models.TableReserved
		}
	}
	return models.TableAvailable
}

// CheckReservationConflict menolak interval [start, end) yang overlap dengan
// reservasi pending/confirmed atau block lain pada meja/tanggal yang sama.
// Overlap half-open: new.start < existing.end AND existing.start < new.end,
// jadi batas yang saling bersentuhan bukan konflik. Reservasi declined dan
// cancelled tidak ikut dihitung.
func CheckReservationConflict(tx *gorm.DB, tableID uint, date, start, end string, excludeReservationID uint) error {
	var count int64
	q := tx.Model(&models.Reservation{}).
		Where("table_id = ? AND date = ?", tableID, date).
		Where("status IN ?", models.ActiveReservationStatuses()).
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeReservationID != 0 {
		q = q.Where("id <> ?", excludeReservationID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrSlotUnavailable
	}

	if err := tx.Model(&models.TableBlock{}).
		Where("table_id = ? AND date = ?", tableID, date).
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrTableBlocked
	}

	return nil
}

// ResolveRestaurantAvailability mengembalikan seluruh meja sebuah restoran
// dengan status turunan untuk satu tanggal (untuk tampilan denah).
func ResolveRestaurantAvailability(db *gorm.DB, restaurantID uint, date string) ([]models.TableAvailability, error) {
	var tables []models.Table
	if err := db.Where("restaurant_id = ?", restaurantID).Order("id").Find(&tables).Error; err != nil {
		return nil, err
	}

	var blocks []models.TableBlock
	if err := db.Where("restaurant_id = ? AND date = ?", restaurantID, date).
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	var reservations []models.Reservation
	if err := db.Where("restaurant_id = ? AND date = ?", restaurantID, date).
		Where("status IN ?", models.ActiveReservationStatuses()).
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	blocksByTable := make(map[uint][]models.TableBlock)
	for _, b := range blocks {
		blocksByTable[b.TableID] = append(blocksByTable[b.TableID], b)
	}
	resByTable := make(map[uint][]models.Reservation)
	for _, r := range reservations {
		resByTable[r.TableID] = append(resByTable[r.TableID], r)
	}

	result := make([]models.TableAvailability, 0, len(tables))
	for _, t := range tables {
		result = append(result, models.TableAvailability{
			Table:  t,
			Status: ResolveTableStatus(blocksByTable[t.ID], resByTable[t.ID]),
		})
	}
	return result, nil
}

package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

var (
	ErrInvalidInterval = errors.New("start time must be before end time")
	ErrInvalidStatus   = errors.New("invalid reservation status")
)

type CreateReservationInput struct {
	TableID      uint
	RestaurantID uint
	Date         string
	StartTime    string
	EndTime      string
	UserName     string
	UserPhone    string
	UserEmail    string
	PreorderNote string
}

// CreateReservation memeriksa konflik dan menyimpan reservasi baru dalam
// satu transaksi. Reservasi selalu dibuat pending; konfirmasi hanya lewat
// aksi admin. Request yang kalah balapan menerima ErrSlotUnavailable dari
// pengecekan konflik di dalam transaksi yang sama.
func CreateReservation(db *gorm.DB, in CreateReservationInput) (*models.Reservation, error) {
	if !utils.ValidDate(in.Date) {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", in.Date)
	}
	if !utils.ValidInterval(in.StartTime, in.EndTime) {
		return nil, ErrInvalidInterval
	}

	var created models.Reservation
	err := db.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.Where("id = ? AND restaurant_id = ?", in.TableID, in.RestaurantID).
			First(&table).Error; err != nil {
			return err
		}

		if err := CheckReservationConflict(tx, in.TableID, in.Date, in.StartTime, in.EndTime, 0); err != nil {
			return err
		}

		created = models.Reservation{
			Code:         NewReservationCode(),
			TableID:      in.TableID,
			RestaurantID: in.RestaurantID,
			Date:         in.Date,
			StartTime:    in.StartTime,
			EndTime:      in.EndTime,
			UserName:     in.UserName,
			UserPhone:    in.UserPhone,
			UserEmail:    in.UserEmail,
			PreorderNote: in.PreorderNote,
			Status:       models.ReservationPending,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		return RecordChange(tx, "reservations", created.ID, models.ChangeInsert, created.RestaurantID)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Transisi status yang diizinkan. Reservasi tidak pernah dihapus;
// declined/cancelled adalah status terminal.
var allowedTransitions = map[string][]string{
	models.ReservationPending:   {models.ReservationConfirmed, models.ReservationDeclined, models.ReservationCancelled},
	models.ReservationConfirmed: {models.ReservationCancelled, models.ReservationDeclined},
}

func transitionAllowed(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// UpdateReservationStatus menjalankan transisi status oleh admin.
// Pindah ke declined/cancelled langsung membebaskan slot untuk
// pengecekan konflik berikutnya.
func UpdateReservationStatus(db *gorm.DB, reservationID uint, newStatus string) (*models.Reservation, error) {
	switch newStatus {
	case models.ReservationConfirmed, models.ReservationDeclined, models.ReservationCancelled:
	default:
		return nil, ErrInvalidStatus
	}

	var reservation models.Reservation
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, reservationID).Error; err != nil {
			return err
		}
		if !transitionAllowed(reservation.Status, newStatus) {
			return fmt.Errorf("%w: cannot move %s reservation to %s",
				ErrInvalidStatus, reservation.Status, newStatus)
		}

		reservation.Status = newStatus
		if err := tx.Save(&reservation).Error; err != nil {
			return err
		}

		return RecordChange(tx, "reservations", reservation.ID, models.ChangeUpdate, reservation.RestaurantID)
	})
	if err != nil {
		return nil, err
	}

	// Notifikasi email berjalan di background, kegagalan tidak
	// membatalkan transisi.
	go NotifyReservationStatus(reservation)

	return &reservation, nil
}

// NewReservationCode menghasilkan kode konfirmasi pendek untuk lookup
// reservasi oleh customer.
func NewReservationCode() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

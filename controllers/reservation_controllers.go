package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservation/middlewares"
	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/services"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

// CreateReservation -> customer mengajukan reservasi baru.
// Hasilnya selalu pending; konfirmasi menunggu keputusan admin.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		TableID      uint   `json:"table_id" binding:"required"`
		RestaurantID uint   `json:"restaurant_id" binding:"required"`
		Date         string `json:"date" binding:"required"`
		StartTime    string `json:"start_time" binding:"required"`
		EndTime      string `json:"end_time" binding:"required"`
		UserName     string `json:"user_name" binding:"required"`
		UserPhone    string `json:"user_phone" binding:"required"`
		UserEmail    string `json:"user_email" binding:"required,email"`
		PreorderNote string `json:"preorder_note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := services.CreateReservation(rc.DB, services.CreateReservationInput{
		TableID:      req.TableID,
		RestaurantID: req.RestaurantID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		UserName:     req.UserName,
		UserPhone:    req.UserPhone,
		UserEmail:    req.UserEmail,
		PreorderNote: req.PreorderNote,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSlotUnavailable), errors.Is(err, services.ErrTableBlocked):
			utils.RespondError(c, http.StatusConflict, err)
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		case errors.Is(err, services.ErrInvalidInterval):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusBadRequest, err)
		}
		return
	}

	utils.InfoLogger.Printf("Reservation %s created: table=%d date=%s %s-%s",
		reservation.Code, reservation.TableID, reservation.Date,
		reservation.StartTime, reservation.EndTime)
	utils.RespondJSON(c, http.StatusCreated, "Reservation submitted, waiting for approval", reservation)
}

// GetReservationByCode -> customer melihat reservasinya sendiri.
// Email wajib cocok supaya kode saja tidak cukup untuk mengintip data orang.
func (rc *ReservationController) GetReservationByCode(c *gin.Context) {
	code := c.Param("code")
	email := c.Query("email")
	if email == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("query param email is required"))
		return
	}

	var reservation models.Reservation
	if err := rc.DB.Where("code = ? AND user_email = ?", code, email).
		First(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("reservation not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// ListReservations -> daftar reservasi untuk dashboard admin,
// difilter otomatis sesuai scope restoran admin.
func (rc *ReservationController) ListReservations(c *gin.Context) {
	query := rc.DB.Order("date DESC").Order("start_time DESC")

	if scopedID, restricted := middlewares.ScopedRestaurantID(c); restricted {
		query = query.Where("restaurant_id = ?", scopedID)
	} else if raw := c.Query("restaurant_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant_id"))
			return
		}
		query = query.Where("restaurant_id = ?", id)
	}

	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// UpdateReservationStatus -> admin approve/decline/cancel sebuah reservasi
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	reservationID, err := strconv.Atoi(c.Param("reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid reservation ID"))
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, reservationID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("reservation not found"))
		return
	}

	if !middlewares.CanAccessRestaurant(c, reservation.RestaurantID) {
		utils.RespondError(c, http.StatusForbidden, errors.New("reservation outside admin scope"))
		return
	}

	updated, err := services.UpdateReservationStatus(rc.DB, reservation.ID, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			utils.RespondError(c, http.StatusBadRequest, err)
		} else {
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.InfoLogger.Printf("Reservation %s status changed to %s", updated.Code, updated.Status)
	utils.RespondJSON(c, http.StatusOK, "Reservation status updated", updated)
}

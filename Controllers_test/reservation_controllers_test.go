package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservation/controllers"
	"github.com/yeremiapane/restaurant-reservation/middlewares"
	"github.com/yeremiapane/restaurant-reservation/models"
)

func setupReservationRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	ctrl := controllers.NewReservationController(db)
	r.POST("/reservations", ctrl.CreateReservation)
	r.GET("/reservations/:code", ctrl.GetReservationByCode)

	admin := r.Group("/admin", middlewares.AuthMiddleware())
	admin.GET("/reservations", ctrl.ListReservations)
	admin.PATCH("/reservations/:reservation_id", ctrl.UpdateReservationStatus)
	return r
}

func reservationPayload(rest models.Restaurant, table models.Table, start, end string) map[string]interface{} {
	return map[string]interface{}{
		"table_id":      table.ID,
		"restaurant_id": rest.ID,
		"date":          "2026-09-20",
		"start_time":    start,
		"end_time":      end,
		"user_name":     "Aysel Mammadova",
		"user_phone":    "+994-50-123-4567",
		"user_email":    "aysel@example.com",
	}
}

func TestCreateReservation(t *testing.T) {
	db := newTestDB(t, "ctrl_reservation_create")
	rest, table := seedRestaurantWithTable(t, db)
	r := setupReservationRouter(db)

	w := doRequest(t, r, "POST", "/reservations", "", reservationPayload(rest, table, "19:00", "21:00"))
	assert.Equal(t, http.StatusCreated, w.Code)

	resp := parseResponse(t, w)
	assert.Equal(t, true, resp["status"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "pending", data["status"])
	assert.Len(t, data["code"].(string), 8)

	// Slot overlap ditolak 409
	w = doRequest(t, r, "POST", "/reservations", "", reservationPayload(rest, table, "20:00", "22:00"))
	assert.Equal(t, http.StatusConflict, w.Code)

	// Slot bersentuhan tetap diterima
	w = doRequest(t, r, "POST", "/reservations", "", reservationPayload(rest, table, "21:00", "22:00"))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateReservationValidation(t *testing.T) {
	db := newTestDB(t, "ctrl_reservation_validation")
	rest, table := seedRestaurantWithTable(t, db)
	r := setupReservationRouter(db)

	// Interval terbalik
	w := doRequest(t, r, "POST", "/reservations", "", reservationPayload(rest, table, "21:00", "19:00"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Email tidak valid
	payload := reservationPayload(rest, table, "19:00", "21:00")
	payload["user_email"] = "not-an-email"
	w = doRequest(t, r, "POST", "/reservations", "", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Meja milik restoran lain
	payload = reservationPayload(rest, table, "19:00", "21:00")
	payload["restaurant_id"] = rest.ID + 99
	w = doRequest(t, r, "POST", "/reservations", "", payload)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetReservationByCode(t *testing.T) {
	db := newTestDB(t, "ctrl_reservation_lookup")
	rest, table := seedRestaurantWithTable(t, db)
	r := setupReservationRouter(db)

	w := doRequest(t, r, "POST", "/reservations", "", reservationPayload(rest, table, "18:00", "20:00"))
	assert.Equal(t, http.StatusCreated, w.Code)
	code := parseResponse(t, w)["data"].(map[string]interface{})["code"].(string)

	// Tanpa email -> 400
	w = doRequest(t, r, "GET", "/reservations/"+code, "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Email salah -> 404, kode saja tidak cukup
	w = doRequest(t, r, "GET", "/reservations/"+code+"?email=other@example.com", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, "GET", "/reservations/"+code+"?email=aysel@example.com", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := parseResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, code, data["code"])
}

func TestUpdateReservationStatusEndpoint(t *testing.T) {
	db := newTestDB(t, "ctrl_reservation_status")
	rest, table := seedRestaurantWithTable(t, db)
	r := setupReservationRouter(db)
	superToken := newAdminToken(t, db, "root@example.com", nil)

	w := doRequest(t, r, "POST", "/reservations", "", reservationPayload(rest, table, "19:00", "21:00"))
	assert.Equal(t, http.StatusCreated, w.Code)
	data := parseResponse(t, w)["data"].(map[string]interface{})
	reservationID := int(data["id"].(float64))
	path := fmt.Sprintf("/admin/reservations/%d", reservationID)

	// Tanpa token -> 401
	w = doRequest(t, r, "PATCH", path, "", map[string]interface{}{"status": "confirmed"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, "PATCH", path, superToken, map[string]interface{}{"status": "confirmed"})
	assert.Equal(t, http.StatusOK, w.Code)
	updated := parseResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "confirmed", updated["status"])

	// Status di luar taksonomi -> 400
	w = doRequest(t, r, "PATCH", path, superToken, map[string]interface{}{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReservationScoping(t *testing.T) {
	db := newTestDB(t, "ctrl_reservation_scope")
	rest, table := seedRestaurantWithTable(t, db)

	// Restoran kedua dengan admin sendiri
	other := models.Restaurant{Name: "Dolma Restaurant", LocationID: rest.LocationID}
	assert.NoError(t, db.Create(&other).Error)
	otherToken := newAdminToken(t, db, "dolma@example.com", &other.ID)

	r := setupReservationRouter(db)

	w := doRequest(t, r, "POST", "/reservations", "", reservationPayload(rest, table, "19:00", "21:00"))
	assert.Equal(t, http.StatusCreated, w.Code)
	data := parseResponse(t, w)["data"].(map[string]interface{})
	reservationID := int(data["id"].(float64))

	// Admin restoran lain tidak bisa menyentuh reservasi ini
	path := fmt.Sprintf("/admin/reservations/%d", reservationID)
	w = doRequest(t, r, "PATCH", path, otherToken, map[string]interface{}{"status": "confirmed"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Dan daftarnya pun kosong untuk dia
	w = doRequest(t, r, "GET", "/admin/reservations", otherToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseResponse(t, w)
	assert.Empty(t, resp["data"])
}

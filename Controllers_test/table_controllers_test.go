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
	"github.com/yeremiapane/restaurant-reservation/services"
)

func setupTableRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	ctrl := controllers.NewTableController(db)

	admin := r.Group("/admin", middlewares.AuthMiddleware())
	admin.POST("/tables", ctrl.CreateTable)
	admin.PATCH("/tables/:table_id", ctrl.UpdateTable)
	admin.DELETE("/tables/:table_id", ctrl.DeleteTable)
	admin.PATCH("/tables/:table_id/status", ctrl.SetTableStatus)
	return r
}

func TestCreateTableDefaults(t *testing.T) {
	db := newTestDB(t, "ctrl_table_create")
	rest, _ := seedRestaurantWithTable(t, db)
	r := setupTableRouter(db)
	token := newAdminToken(t, db, "root-tables@example.com", nil)

	w := doRequest(t, r, "POST", "/admin/tables", token, map[string]interface{}{
		"restaurant_id": rest.ID,
		"name":          "Terrace 1",
		"zone":          "Terrace",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	data := parseResponse(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, 4, data["capacity"])
	assert.Equal(t, "rect", data["shape"])
	assert.EqualValues(t, 100, data["width"])
	assert.EqualValues(t, 80, data["height"])

	// Restoran tidak ada -> 404
	w = doRequest(t, r, "POST", "/admin/tables", token, map[string]interface{}{
		"restaurant_id": rest.ID + 99,
		"name":          "Ghost",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateAndDeleteTable(t *testing.T) {
	db := newTestDB(t, "ctrl_table_update")
	rest, table := seedRestaurantWithTable(t, db)
	r := setupTableRouter(db)
	token := newAdminToken(t, db, "firuze-tables@example.com", &rest.ID)
	path := fmt.Sprintf("/admin/tables/%d", table.ID)

	// Partial update: hanya field yang dikirim yang berubah
	w := doRequest(t, r, "PATCH", path, token, map[string]interface{}{
		"capacity":   6,
		"position_x": 250,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	data := parseResponse(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, 6, data["capacity"])
	assert.EqualValues(t, 250, data["position_x"])
	assert.Equal(t, table.Name, data["name"])

	w = doRequest(t, r, "DELETE", path, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Table{}).Where("id = ?", table.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestTableScopeEnforcement(t *testing.T) {
	db := newTestDB(t, "ctrl_table_scope")
	rest, table := seedRestaurantWithTable(t, db)
	r := setupTableRouter(db)

	other := models.Restaurant{Name: "Dolma Restaurant", LocationID: rest.LocationID}
	assert.NoError(t, db.Create(&other).Error)
	otherToken := newAdminToken(t, db, "dolma-tables@example.com", &other.ID)

	path := fmt.Sprintf("/admin/tables/%d", table.ID)
	w := doRequest(t, r, "PATCH", path, otherToken, map[string]interface{}{"capacity": 8})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, r, "POST", "/admin/tables", otherToken, map[string]interface{}{
		"restaurant_id": rest.ID,
		"name":          "Intruder",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSetTableStatusOverride(t *testing.T) {
	db := newTestDB(t, "ctrl_table_status")
	rest, table := seedRestaurantWithTable(t, db)
	r := setupTableRouter(db)
	token := newAdminToken(t, db, "firuze-status@example.com", &rest.ID)
	path := fmt.Sprintf("/admin/tables/%d/status", table.ID)
	date := "2026-09-25"

	w := doRequest(t, r, "PATCH", path, token, map[string]interface{}{
		"status": "blocked",
		"date":   date,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	availability, err := services.ResolveRestaurantAvailability(db, rest.ID, date)
	assert.NoError(t, err)
	assert.Equal(t, models.TableBlocked, availability[0].Status)

	w = doRequest(t, r, "PATCH", path, token, map[string]interface{}{
		"status": "empty",
		"date":   date,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	availability, err = services.ResolveRestaurantAvailability(db, rest.ID, date)
	assert.NoError(t, err)
	assert.Equal(t, models.TableAvailable, availability[0].Status)

	// Status di luar empty/occupied/blocked -> 400
	w = doRequest(t, r, "PATCH", path, token, map[string]interface{}{
		"status": "reserved",
		"date":   date,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

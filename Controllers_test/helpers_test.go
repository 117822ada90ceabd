package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

// newTestDB membuka sqlite in-memory terpisah per nama supaya test file
// tidak saling menumpuk data.
func newTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Location{}, &models.Restaurant{}, &models.Table{},
		&models.Reservation{}, &models.TableBlock{}, &models.AdminUser{},
		&models.UserMessage{}, &models.ChangeLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// seedRestaurantWithTable membuat satu lokasi + restoran + meja untuk test.
func seedRestaurantWithTable(t *testing.T, db *gorm.DB) (models.Restaurant, models.Table) {
	t.Helper()
	loc := models.Location{Name: "Fountain Square"}
	assert.NoError(t, db.Create(&loc).Error)
	rest := models.Restaurant{Name: "Firuze Restaurant", LocationID: loc.ID, Address: "Nizami St 15"}
	assert.NoError(t, db.Create(&rest).Error)
	table := models.Table{RestaurantID: rest.ID, Name: "Hall A", Capacity: 4, Shape: "rect", Zone: "Center"}
	assert.NoError(t, db.Create(&table).Error)
	return rest, table
}

// newAdminToken membuat akun admin dan mengembalikan bearer token-nya.
// restaurantID nil berarti superadmin.
func newAdminToken(t *testing.T, db *gorm.DB, email string, restaurantID *uint) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	role := models.RoleAdmin
	if restaurantID == nil {
		role = models.RoleSuperAdmin
	}
	admin := models.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		RestaurantID: restaurantID,
	}
	assert.NoError(t, db.Create(&admin).Error)

	token, err := utils.GenerateToken(admin.ID, admin.Role, admin.RestaurantID)
	assert.NoError(t, err)
	return token
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
